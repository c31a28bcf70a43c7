package pattern

import "time"

// WeekdayStat is the number of input dates falling on one weekday and
// their share of all input dates.
type WeekdayStat struct {
	Weekday    time.Weekday
	Count      int
	Percentage float64
}

// WeekdayStats holds one entry per weekday, indexed Monday = 0 ... Sunday = 6.
type WeekdayStats [DaysPerWeek]WeekdayStat

// Total returns the sum of all counts
func (ws WeekdayStats) Total() int {
	total := 0
	for _, s := range ws {
		total += s.Count
	}
	return total
}

// Get returns the statistic of a weekday
func (ws WeekdayStats) Get(w time.Weekday) WeekdayStat {
	return ws[isoIndex(w)]
}

func newWeekdayStats() WeekdayStats {
	var ws WeekdayStats
	for i, w := range isoWeek {
		ws[i].Weekday = w
	}
	return ws
}

// ComputeWeekdayStats tallies the dates of the set per weekday
func ComputeWeekdayStats(dates DateSet) WeekdayStats {
	ws := newWeekdayStats()
	for d := range dates {
		ws[isoIndex(d.Weekday())].Count++
	}
	ws.fillPercentages()
	return ws
}

// ComputeWeekdayStatsFromMask tallies start+i for every i where included[i] is true.
func ComputeWeekdayStatsFromMask(start Date, included []bool) WeekdayStats {
	ws := newWeekdayStats()
	// The weekday advances by one per bit, so only the first one needs a lookup.
	first := isoIndex(start.Weekday())
	for i, ok := range included {
		if ok {
			ws[(first+i)%DaysPerWeek].Count++
		}
	}
	ws.fillPercentages()
	return ws
}

func (ws *WeekdayStats) fillPercentages() {
	total := ws.Total()
	if total == 0 {
		return
	}
	for i := range ws {
		ws[i].Percentage = float64(ws[i].Count) / float64(total) * 100
	}
}
