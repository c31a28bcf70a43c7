// Package xcal renders calendar patterns as xCal (RFC 6321) documents.
package xcal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/cyp0633/calpattern/pattern"
	"github.com/cyp0633/calpattern/recurrence"
)

// Encode builds the xCal document of a pattern, the XML twin of recurrence.ToCalendar.
func Encode(p pattern.CalendarPattern, opts recurrence.EventOptions) (*etree.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.SignificantDays.IsEmpty() {
		return nil, recurrence.ErrNoSignificantDays
	}

	uid := opts.UID
	if uid == "" {
		uid = uuid.NewString()
	}
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement(TagICalendar)

	vcalendar := root.CreateElement("vcalendar")
	calProps := vcalendar.CreateElement(TagProperties)
	addValue(calProps, "version", TagText, "2.0")
	addValue(calProps, "prodid", TagText, recurrence.ProductID)

	vevent := vcalendar.CreateElement(TagComponents).CreateElement("vevent")
	props := vevent.CreateElement(TagProperties)
	addValue(props, "uid", TagText, uid)
	addValue(props, "dtstamp", TagDateTime, stamp.UTC().Format("2006-01-02T15:04:05Z"))
	addValue(props, "dtstart", TagDate, p.From.String())
	if opts.Summary != "" {
		addValue(props, "summary", TagText, opts.Summary)
	}

	recur := props.CreateElement("rrule").CreateElement(TagRecur)
	recur.CreateElement("freq").SetText("WEEKLY")
	recur.CreateElement("until").SetText(p.To.String())
	for _, code := range strings.Split(p.SignificantDays.String(), ",") {
		recur.CreateElement("byday").SetText(code)
	}

	addDates(props, "exdate", p.ExcludedDates)
	addDates(props, "rdate", p.AdditionalDates)

	AddNamespaces(doc)
	return doc, nil
}

// Write encodes the pattern and writes the indented document to w
func Write(w io.Writer, p pattern.CalendarPattern, opts recurrence.EventOptions) error {
	doc, err := Encode(p, opts)
	if err != nil {
		return err
	}
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xCal document: %w", err)
	}
	return nil
}

func addValue(parent *etree.Element, name, valueType, value string) {
	parent.CreateElement(name).CreateElement(valueType).SetText(value)
}

func addDates(parent *etree.Element, name string, dates []pattern.Date) {
	if len(dates) == 0 {
		return
	}
	elem := parent.CreateElement(name)
	for _, d := range dates {
		elem.CreateElement(TagDate).SetText(d.String())
	}
}
