package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseDate("not a date") })
}

func TestDate_Arithmetic(t *testing.T) {
	d := MustParseDate("2024-12-30")

	assert.Equal(t, MustParseDate("2025-01-02"), d.AddDays(3))
	assert.Equal(t, MustParseDate("2024-11-30"), d.AddDays(-30))
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, 3, d.DaysUntil(d.AddDays(3)))
	assert.Equal(t, -400, d.DaysUntil(d.AddDays(-400)))

	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.Equal(t, 0, d.Compare(NewDate(2024, 12, 30)))
	assert.Equal(t, MustParseDate("2025-03-01"), NewDate(2025, 2, 29))
}

func TestDateOf_KeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 3, 1, 2, 0, 0, 0, loc)

	assert.Equal(t, MustParseDate("2024-03-01"), DateOf(ts))
}

func TestDateSet(t *testing.T) {
	start := MustParseDate("2024-01-01")
	set := NewDateSet(start.AddDays(4), start, start.AddDays(2), start)

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(start.AddDays(2)))
	assert.False(t, set.Contains(start.AddDays(1)))
	assert.Equal(t, []Date{start, start.AddDays(2), start.AddDays(4)}, set.Sorted())

	mask := set.Mask(start, start.AddDays(4))
	assert.Equal(t, []bool{true, false, true, false, true}, mask)
	assert.Equal(t, set, MaskToDateSet(start, mask))
	assert.Nil(t, set.Mask(start, start.AddDays(-1)))
}
