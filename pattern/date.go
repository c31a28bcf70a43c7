package pattern

import (
	"fmt"
	"slices"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a civil calendar day without time-of-day or timezone.
// It is comparable and can be used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date, normalizing out-of-range values the way time.Date does
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO date (YYYY-MM-DD)
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustParseDate is like ParseDate but panics on invalid input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the date at midnight UTC
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier when n is negative)
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is earlier than o
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is later than o
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// DaysUntil returns the number of days from d to o
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// DateSet is an unordered set of unique dates
type DateSet map[Date]struct{}

// NewDateSet creates a set holding the given dates
func NewDateSet(dates ...Date) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// MaskToDateSet expands the boolean encoding, where included[i] means start+i is present.
func MaskToDateSet(start Date, included []bool) DateSet {
	s := make(DateSet)
	for i, ok := range included {
		if ok {
			s.Add(start.AddDays(i))
		}
	}
	return s
}

// Add inserts d into the set
func (s DateSet) Add(d Date) { s[d] = struct{}{} }

// Contains reports whether d is in the set
func (s DateSet) Contains(d Date) bool {
	_, ok := s[d]
	return ok
}

// Len returns the number of dates in the set
func (s DateSet) Len() int { return len(s) }

// Sorted returns the dates in ascending order
func (s DateSet) Sorted() []Date {
	dates := make([]Date, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, Date.Compare)
	return dates
}

// Mask encodes the set as a boolean slice covering [start, end] inclusive.
// Dates outside that range are dropped.
func (s DateSet) Mask(start, end Date) []bool {
	if end.Before(start) {
		return nil
	}
	mask := make([]bool, start.DaysUntil(end)+1)
	for i := range mask {
		mask[i] = s.Contains(start.AddDays(i))
	}
	return mask
}
