package pattern

import (
	"cmp"
	"slices"
)

// Thresholds of the significant-day search. They are fixed.
const (
	// MinDaysForPattern is the number of dates at or below which no pattern is attempted
	MinDaysForPattern = 5
	// TargetPercentage is the share of all dates the chosen weekdays must exceed
	TargetPercentage = 90.0
	// ErrorMargin is subtracted from TargetPercentage to get the per-day bar
	ErrorMargin = 5.0
	// DaysPerWeek is the number of weekdays
	DaysPerWeek = 7
)

// rankByPercentage orders the statistics by descending percentage.
// Equal percentages keep ISO weekday order (Monday first).
func rankByPercentage(stats WeekdayStats) []WeekdayStat {
	ranked := slices.Clone(stats[:])
	slices.SortStableFunc(ranked, func(a, b WeekdayStat) int {
		return cmp.Compare(b.Percentage, a.Percentage)
	})
	return ranked
}

// significantDays searches for the smallest group of top-ranked weekdays where
// each member reaches (TargetPercentage-ErrorMargin)/size percent and the group
// together exceeds TargetPercentage percent.
func (a *Analyzer) significantDays(stats WeekdayStats) WeekdaySet {
	total := stats.Total()
	if total <= MinDaysForPattern {
		a.logger.Debug("too few days to extract pattern",
			"total", total,
			"minimum", MinDaysForPattern+1)
		return 0
	}

	ranked := rankByPercentage(stats)
	for size := 1; size <= DaysPerWeek; size++ {
		minDayPercentage := (TargetPercentage - ErrorMargin) / float64(size)

		var set WeekdaySet
		sum := 0.0
		fits := true
		for _, s := range ranked[:size] {
			if s.Percentage < minDayPercentage {
				fits = false
				break
			}
			sum += s.Percentage
			set = set.Add(s.Weekday)
		}

		if fits && sum > TargetPercentage {
			a.logger.Debug("significant days found",
				"days", set.String(),
				"coverage", sum)
			return set
		}
	}

	a.logger.Debug("no weekday group explains the dates", "total", total)
	return 0
}
