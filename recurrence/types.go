package recurrence

import (
	"errors"
	"time"
)

// ProductID is written to the PRODID of generated calendars
const ProductID = "-//cyp0633//calpattern//EN"

var (
	// ErrNoSignificantDays is returned when a pattern without weekdays is turned into a rule
	ErrNoSignificantDays = errors.New("pattern has no significant days")
	// ErrNotWeekly is returned when an RRULE does not describe a weekly recurrence
	ErrNotWeekly = errors.New("recurrence rule is not weekly")
	// ErrNoEvent is returned when a calendar holds no VEVENT to read a pattern from
	ErrNoEvent = errors.New("calendar has no event")
)

// EventOptions controls how a pattern is published as a VEVENT
type EventOptions struct {
	UID     string    // Generated when empty
	Summary string    // Omitted when empty
	Stamp   time.Time // DTSTAMP, defaults to the current time
}
