package pattern

import (
	"errors"
	"fmt"
)

// CalendarPattern is a weekly recurrence inferred from a set of dates.
//
// The pattern yields every date in [From, To] whose weekday is in SignificantDays,
// minus ExcludedDates, plus AdditionalDates. Both date lists are sorted ascending.
type CalendarPattern struct {
	From            Date
	To              Date
	SignificantDays WeekdaySet
	AdditionalDates []Date
	ExcludedDates   []Date
}

var (
	ErrInvertedInterval  = errors.New("pattern interval ends before it starts")
	ErrOverlappingDates  = errors.New("date is both additional and excluded")
	ErrMisplacedExcluded = errors.New("excluded date does not belong to the pattern")
)

// Validate checks the structural invariants of the pattern
func (p CalendarPattern) Validate() error {
	if p.To.Before(p.From) {
		return fmt.Errorf("%w: %s > %s", ErrInvertedInterval, p.From, p.To)
	}

	additional := NewDateSet(p.AdditionalDates...)
	for _, d := range p.ExcludedDates {
		if additional.Contains(d) {
			return fmt.Errorf("%w: %s", ErrOverlappingDates, d)
		}
		if !p.SignificantDays.Contains(d.Weekday()) || d.Before(p.From) || !d.Before(p.To) {
			return fmt.Errorf("%w: %s", ErrMisplacedExcluded, d)
		}
	}
	return nil
}

// Contains reports whether the pattern yields d
func (p CalendarPattern) Contains(d Date) bool {
	for _, a := range p.AdditionalDates {
		if a == d {
			return true
		}
	}
	for _, e := range p.ExcludedDates {
		if e == d {
			return false
		}
	}
	if d.Before(p.From) || d.After(p.To) {
		return false
	}
	return p.SignificantDays.Contains(d.Weekday())
}
