package pattern

import (
	"strings"
	"time"
)

// isoWeek lists the weekdays in ISO order. It is the enumeration order used
// for statistics and for breaking ties between equal percentages.
var isoWeek = [DaysPerWeek]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

var weekdayCodes = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

// isoIndex maps a weekday to its ISO ordinal, Monday = 0 ... Sunday = 6
func isoIndex(w time.Weekday) int {
	return (int(w) + 6) % DaysPerWeek
}

// WeekdayCode returns the two-letter iCalendar code of w (MO, TU, ...)
func WeekdayCode(w time.Weekday) string {
	return weekdayCodes[w]
}

// WeekdaySet is a set of weekdays stored as a bitmask. The zero value is empty.
type WeekdaySet uint8

// NewWeekdaySet creates a set holding the given weekdays
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// AllWeekdays is the set of all seven days
var AllWeekdays = NewWeekdaySet(isoWeek[:]...)

// Add returns the set with w added
func (s WeekdaySet) Add(w time.Weekday) WeekdaySet {
	return s | 1<<uint(w)
}

// Contains reports whether w is in the set
func (s WeekdaySet) Contains(w time.Weekday) bool {
	return s&(1<<uint(w)) != 0
}

// IsEmpty reports whether the set has no weekdays
func (s WeekdaySet) IsEmpty() bool { return s == 0 }

// Len returns the number of weekdays in the set
func (s WeekdaySet) Len() int {
	n := 0
	for _, w := range isoWeek {
		if s.Contains(w) {
			n++
		}
	}
	return n
}

// Weekdays returns the members in ISO order
func (s WeekdaySet) Weekdays() []time.Weekday {
	days := make([]time.Weekday, 0, DaysPerWeek)
	for _, w := range isoWeek {
		if s.Contains(w) {
			days = append(days, w)
		}
	}
	return days
}

// String renders the set as comma separated iCalendar codes, e.g. "TU,WE,TH,FR"
func (s WeekdaySet) String() string {
	codes := make([]string, 0, DaysPerWeek)
	for _, w := range s.Weekdays() {
		codes = append(codes, WeekdayCode(w))
	}
	return strings.Join(codes, ",")
}
