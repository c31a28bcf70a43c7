package xcal

import (
	"bytes"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyp0633/calpattern/pattern"
	"github.com/cyp0633/calpattern/recurrence"
)

func samplePattern() pattern.CalendarPattern {
	d0 := pattern.MustParseDate("2024-01-01")
	return pattern.CalendarPattern{
		From:            d0,
		To:              d0.AddDays(27),
		SignificantDays: pattern.NewWeekdaySet(time.Monday, time.Thursday),
		ExcludedDates:   []pattern.Date{d0.AddDays(7)},
		AdditionalDates: []pattern.Date{d0.AddDays(5), d0.AddDays(40)},
	}
}

func TestEncode(t *testing.T) {
	doc, err := Encode(samplePattern(), recurrence.EventOptions{
		UID:   "abc",
		Stamp: time.Date(2024, 4, 1, 12, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, TagICalendar, root.Tag)
	assert.Equal(t, ICalendar, root.SelectAttrValue("xmlns", ""))

	props := doc.FindElement("//vevent/properties")
	require.NotNil(t, props)

	assert.Equal(t, "abc", props.FindElement("uid/text").Text())
	assert.Equal(t, "2024-04-01T12:30:00Z", props.FindElement("dtstamp/date-time").Text())
	assert.Equal(t, "2024-01-01", props.FindElement("dtstart/date").Text())
	assert.Nil(t, props.FindElement("summary"))

	recur := props.FindElement("rrule/recur")
	require.NotNil(t, recur)
	assert.Equal(t, "WEEKLY", recur.FindElement("freq").Text())
	assert.Equal(t, "2024-01-28", recur.FindElement("until").Text())

	var byDay []string
	for _, e := range recur.SelectElements("byday") {
		byDay = append(byDay, e.Text())
	}
	assert.Equal(t, []string{"MO", "TH"}, byDay)

	var exdates, rdates []string
	for _, e := range props.FindElements("exdate/date") {
		exdates = append(exdates, e.Text())
	}
	for _, e := range props.FindElements("rdate/date") {
		rdates = append(rdates, e.Text())
	}
	assert.Equal(t, []string{"2024-01-08"}, exdates)
	assert.Equal(t, []string{"2024-01-06", "2024-02-10"}, rdates)
}

func TestEncode_Errors(t *testing.T) {
	empty := samplePattern()
	empty.SignificantDays = 0
	empty.ExcludedDates = nil
	_, err := Encode(empty, recurrence.EventOptions{})
	assert.ErrorIs(t, err, recurrence.ErrNoSignificantDays)

	invalid := samplePattern()
	invalid.AdditionalDates = invalid.ExcludedDates
	_, err = Encode(invalid, recurrence.EventOptions{})
	assert.ErrorIs(t, err, pattern.ErrOverlappingDates)
}

func TestWrite_ParsesBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePattern(), recurrence.EventOptions{Summary: "Depot"}))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	assert.Equal(t, "Depot", doc.FindElement("//vevent/properties/summary/text").Text())
	assert.NotEmpty(t, doc.FindElement("//vevent/properties/uid/text").Text())
}
