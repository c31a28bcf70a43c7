package pattern

import "slices"

// classify splits the deviations from the weekly rule into additional and
// excluded dates. Days are scanned over [from, to); a date equal to to is
// never reported.
func classify(dates DateSet, from, to Date, days WeekdaySet) (additional, excluded []Date) {
	for d := range dates {
		if d.Before(from) || d.After(to) {
			additional = append(additional, d)
		}
	}

	for d := from; d.Before(to); d = d.AddDays(1) {
		significant := days.Contains(d.Weekday())
		present := dates.Contains(d)
		switch {
		case significant && !present:
			excluded = append(excluded, d)
		case !significant && present:
			additional = append(additional, d)
		}
	}

	slices.SortFunc(additional, Date.Compare)
	return additional, excluded
}
