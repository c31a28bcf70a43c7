package recurrence

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/cyp0633/calpattern/pattern"
)

// ExtractDates collects the days of every VEVENT in the calendar: the date of
// DTSTART plus all RDATE values. RRULEs are not expanded, so a recurring master
// contributes only its explicit dates.
func ExtractDates(cal *ical.Calendar) (pattern.DateSet, error) {
	dates := pattern.NewDateSet()
	for _, event := range cal.Events() {
		if err := extractComponentDates(event.Component, dates); err != nil {
			uid, _ := event.Props.Text(ical.PropUID)
			return nil, fmt.Errorf("event %q: %w", uid, err)
		}
	}
	return dates, nil
}

// DecodeDates reads every calendar in an iCalendar stream and extracts its dates
func DecodeDates(r io.Reader) (pattern.DateSet, error) {
	dates := pattern.NewDateSet()
	dec := ical.NewDecoder(r)
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		found, err := ExtractDates(cal)
		if err != nil {
			return nil, err
		}
		for d := range found {
			dates.Add(d)
		}
	}
	return dates, nil
}

func extractComponentDates(comp *ical.Component, dates pattern.DateSet) error {
	if prop := comp.Props.Get(ical.PropDateTimeStart); prop != nil {
		start, err := prop.DateTime(time.UTC)
		if err != nil {
			return fmt.Errorf("invalid DTSTART: %w", err)
		}
		dates.Add(pattern.DateOf(start))
	}

	for _, prop := range comp.Props[ical.PropRecurrenceDates] {
		rdates, err := parseDateList(prop.Value, prop.Params)
		if err != nil {
			return fmt.Errorf("invalid RDATE: %w", err)
		}
		for _, d := range rdates {
			dates.Add(d)
		}
	}
	return nil
}

// parseDateList parses a comma separated RDATE or EXDATE value. Date-time
// entries are truncated to their day.
func parseDateList(value string, params ical.Params) ([]pattern.Date, error) {
	if value == "" {
		return nil, nil
	}

	dateOnly := isDateOnly(params)

	var dates []pattern.Date
	for _, s := range strings.Split(value, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		if !dateOnly {
			if t, err := time.Parse("20060102T150405Z", s); err == nil {
				dates = append(dates, pattern.DateOf(t))
				continue
			}
			if t, err := time.Parse("20060102T150405", s); err == nil {
				dates = append(dates, pattern.DateOf(t))
				continue
			}
		}

		t, err := time.Parse("20060102", s)
		if err != nil {
			return nil, fmt.Errorf("unrecognized date %q", s)
		}
		dates = append(dates, pattern.DateOf(t))
	}
	return dates, nil
}

// isDateOnly checks for the VALUE=DATE parameter
func isDateOnly(params ical.Params) bool {
	if params == nil {
		return false
	}
	return strings.EqualFold(params.Get(ical.ParamValue), string(ical.ValueDate))
}

func formatDateList(dates []pattern.Date) string {
	values := make([]string, len(dates))
	for i, d := range dates {
		values[i] = d.Time().Format("20060102")
	}
	return strings.Join(values, ",")
}
