/*
Package pattern compresses an explicit set of calendar dates into a weekly
recurrence: the weekdays that recur consistently, the interval they hold over,
and the dates that deviate from that rule.

Analysis runs in three stages:

 1. Weekday statistics: dates are tallied per weekday and turned into percentages.
 2. Significant-day search: the smallest group of top-ranked weekdays where every
    member reaches (90-5)/n percent and the group together exceeds 90 percent.
 3. Interval and exceptions: the window is widened to just short of the nearest
    significant weekday outside the observed span, then every day in [from, to)
    is classified as matching, excluded (expected but missing) or additional
    (present but unexpected). Dates outside [from, to] are additional.

Basic usage:

	dates := pattern.NewDateSet(pattern.MustParseDate("2024-01-07"), ...)
	if p, ok := pattern.ComputeCalendarPattern(dates).Get(); ok {
		fmt.Println(p.From, p.To, p.SignificantDays)
	}

Use New with WithLogger to receive diagnostics when no pattern can be found.
*/
package pattern
