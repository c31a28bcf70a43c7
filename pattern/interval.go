package pattern

// intervalStart returns the first day of the validity window: the day after the
// closest significant weekday preceding first, or first itself when none is
// found within a week.
func intervalStart(first Date, days WeekdaySet) Date {
	for i := 1; i <= DaysPerWeek; i++ {
		prev := first.AddDays(-i)
		if days.Contains(prev.Weekday()) {
			return prev.AddDays(1)
		}
	}
	return first
}

// intervalEnd mirrors intervalStart looking forward from last.
func intervalEnd(last Date, days WeekdaySet) Date {
	for i := 1; i <= DaysPerWeek; i++ {
		next := last.AddDays(i)
		if days.Contains(next.Weekday()) {
			return next.AddDays(-1)
		}
	}
	return last
}

// matchingBounds returns the earliest and latest dates on a significant weekday.
func matchingBounds(dates DateSet, days WeekdaySet) (first, last Date, ok bool) {
	for d := range dates {
		if !days.Contains(d.Weekday()) {
			continue
		}
		if !ok || d.Before(first) {
			first = d
		}
		if !ok || d.After(last) {
			last = d
		}
		ok = true
	}
	return first, last, ok
}
