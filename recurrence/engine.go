package recurrence

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/cyp0633/calpattern/pattern"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// BuildRule returns the weekly rule of the pattern: every significant weekday
// from From until To inclusive. Exceptions are not part of the rule.
func BuildRule(p pattern.CalendarPattern) (*rrule.RRule, error) {
	if p.SignificantDays.IsEmpty() {
		return nil, ErrNoSignificantDays
	}

	byDay := make([]rrule.Weekday, 0, pattern.DaysPerWeek)
	for _, w := range p.SignificantDays.Weekdays() {
		byDay = append(byDay, rruleWeekdays[w])
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   p.From.Time(),
		Until:     p.To.Time(),
		Byweekday: byDay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly rule: %w", err)
	}
	return rule, nil
}

// ToEvent publishes the pattern as an all-day VEVENT with RRULE, EXDATE and RDATE.
func ToEvent(p pattern.CalendarPattern, opts EventOptions) (*ical.Event, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rule, err := BuildRule(p)
	if err != nil {
		return nil, err
	}

	uid := opts.UID
	if uid == "" {
		uid = uuid.NewString()
	}
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uid)
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	event.Props.SetDate(ical.PropDateTimeStart, p.From.Time())
	if opts.Summary != "" {
		event.Props.SetText(ical.PropSummary, opts.Summary)
	}

	rruleProp := ical.NewProp(ical.PropRecurrenceRule)
	rruleProp.Value = dateRuleString(rule, p.To)
	event.Props.Set(rruleProp)

	if len(p.ExcludedDates) > 0 {
		event.Props.Set(dateListProp(ical.PropExceptionDates, p.ExcludedDates))
	}
	if len(p.AdditionalDates) > 0 {
		event.Props.Set(dateListProp(ical.PropRecurrenceDates, p.AdditionalDates))
	}

	return event, nil
}

// ToCalendar wraps the VEVENT of the pattern in a VCALENDAR
func ToCalendar(p pattern.CalendarPattern, opts EventOptions) (*ical.Calendar, error) {
	event, err := ToEvent(p, opts)
	if err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Children = append(cal.Children, event.Component)
	return cal, nil
}

// EncodeCalendar writes the pattern as an iCalendar stream
func EncodeCalendar(w io.Writer, p pattern.CalendarPattern, opts EventOptions) error {
	cal, err := ToCalendar(p, opts)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// ParseEvent reads back a pattern published by ToEvent
func ParseEvent(event *ical.Event) (pattern.CalendarPattern, error) {
	var p pattern.CalendarPattern

	start, err := event.Props.DateTime(ical.PropDateTimeStart, time.UTC)
	if err != nil {
		return p, fmt.Errorf("invalid DTSTART: %w", err)
	}
	p.From = pattern.DateOf(start)

	rruleProp := event.Props.Get(ical.PropRecurrenceRule)
	if rruleProp == nil {
		return p, fmt.Errorf("%w: missing RRULE", ErrNotWeekly)
	}
	opt, err := rrule.StrToROption(rruleProp.Value)
	if err != nil {
		return p, fmt.Errorf("invalid RRULE %q: %w", rruleProp.Value, err)
	}
	if opt.Freq != rrule.WEEKLY || opt.Interval > 1 {
		return p, fmt.Errorf("%w: %s", ErrNotWeekly, rruleProp.Value)
	}
	for _, wd := range opt.Byweekday {
		// rrule counts days from Monday
		p.SignificantDays = p.SignificantDays.Add(time.Weekday((wd.Day() + 1) % pattern.DaysPerWeek))
	}
	if p.SignificantDays.IsEmpty() {
		p.SignificantDays = pattern.NewWeekdaySet(start.Weekday())
	}

	if opt.Until.IsZero() {
		return p, fmt.Errorf("%w: RRULE has no UNTIL", ErrNotWeekly)
	}
	p.To = pattern.DateOf(opt.Until)

	if p.ExcludedDates, err = propDates(event.Props, ical.PropExceptionDates); err != nil {
		return p, err
	}
	if p.AdditionalDates, err = propDates(event.Props, ical.PropRecurrenceDates); err != nil {
		return p, err
	}

	return p, p.Validate()
}

// DecodePattern reads the first VEVENT of an iCalendar stream as a pattern
func DecodePattern(r io.Reader) (pattern.CalendarPattern, error) {
	cal, err := ical.NewDecoder(r).Decode()
	if errors.Is(err, io.EOF) {
		return pattern.CalendarPattern{}, ErrNoEvent
	}
	if err != nil {
		return pattern.CalendarPattern{}, fmt.Errorf("failed to decode calendar: %w", err)
	}

	events := cal.Events()
	if len(events) == 0 {
		return pattern.CalendarPattern{}, ErrNoEvent
	}
	return ParseEvent(&events[0])
}

// dateRuleString renders the rule with UNTIL as a DATE, matching the
// VALUE=DATE of DTSTART.
func dateRuleString(rule *rrule.RRule, until pattern.Date) string {
	parts := strings.Split(rule.OrigOptions.RRuleString(), ";")
	for i, part := range parts {
		if strings.HasPrefix(part, "UNTIL=") {
			parts[i] = "UNTIL=" + until.Time().Format("20060102")
		}
	}
	return strings.Join(parts, ";")
}

func dateListProp(name string, dates []pattern.Date) *ical.Prop {
	prop := ical.NewProp(name)
	prop.SetValueType(ical.ValueDate)
	prop.Value = formatDateList(dates)
	return prop
}

func propDates(props ical.Props, name string) ([]pattern.Date, error) {
	var dates []pattern.Date
	for _, prop := range props[name] {
		parsed, err := parseDateList(prop.Value, prop.Params)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		dates = append(dates, parsed...)
	}
	slices.SortFunc(dates, pattern.Date.Compare)
	return slices.Compact(dates), nil
}
