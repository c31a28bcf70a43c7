package recurrence

import (
	"strings"
	"testing"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyp0633/calpattern/pattern"
)

const operatingDays = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Transit//Timetable//EN
BEGIN:VEVENT
UID:trip-1
DTSTAMP:20240101T000000Z
DTSTART;VALUE=DATE:20240102
RDATE;VALUE=DATE:20240109,20240116
RDATE;VALUE=DATE:20240123
END:VEVENT
BEGIN:VEVENT
UID:trip-2
DTSTAMP:20240101T000000Z
DTSTART:20240130T230000Z
RDATE:20240206T080000Z
END:VEVENT
END:VCALENDAR
`

func TestDecodeDates(t *testing.T) {
	dates, err := DecodeDates(strings.NewReader(crlf(operatingDays)))
	require.NoError(t, err)

	expected := pattern.NewDateSet(
		pattern.MustParseDate("2024-01-02"),
		pattern.MustParseDate("2024-01-09"),
		pattern.MustParseDate("2024-01-16"),
		pattern.MustParseDate("2024-01-23"),
		pattern.MustParseDate("2024-01-30"),
		pattern.MustParseDate("2024-02-06"),
	)
	assert.Equal(t, expected, dates)

	p, ok := pattern.ComputeCalendarPattern(dates).Get()
	require.True(t, ok)
	assert.Equal(t, "TU", p.SignificantDays.String())
}

func TestExtractDates_InvalidRDATE(t *testing.T) {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, "broken")
	rdate := ical.NewProp(ical.PropRecurrenceDates)
	rdate.Value = "tomorrow"
	event.Props.Add(rdate)

	cal := ical.NewCalendar()
	cal.Children = append(cal.Children, event.Component)

	_, err := ExtractDates(cal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `event "broken"`)
}

func TestParseDateList(t *testing.T) {
	dateParams := ical.Params{}
	dateParams.Set(ical.ParamValue, "DATE")

	tests := []struct {
		name     string
		value    string
		params   ical.Params
		expected []string
		wantErr  bool
	}{
		{name: "Empty", value: ""},
		{name: "Dates", value: "20240101, 20240315,", params: dateParams, expected: []string{"2024-01-01", "2024-03-15"}},
		{name: "UTC date-times", value: "20240101T235959Z,20240102T000000Z", expected: []string{"2024-01-01", "2024-01-02"}},
		{name: "Floating date-time", value: "20240229T120000", expected: []string{"2024-02-29"}},
		{name: "Date without VALUE parameter", value: "20240101", expected: []string{"2024-01-01"}},
		{name: "Date-time with VALUE=DATE", value: "20240101T000000Z", params: dateParams, wantErr: true},
		{name: "Garbage", value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateList(tt.value, tt.params)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var expected []pattern.Date
			for _, s := range tt.expected {
				expected = append(expected, pattern.MustParseDate(s))
			}
			assert.Equal(t, expected, got)
		})
	}
}
