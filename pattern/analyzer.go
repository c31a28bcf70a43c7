package pattern

import (
	"io"
	"log/slog"

	"github.com/samber/mo"
)

// Analyzer infers weekly patterns from date sets. It holds no mutable state
// and is safe for concurrent use.
type Analyzer struct {
	logger *slog.Logger
}

// Option represents a configuration option for the Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger receiving diagnostics such as "too few days"
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Analyzer. Without options diagnostics are discarded.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// ComputeSignificantDays returns the weekdays that recur consistently in dates.
// The set is empty when there are too few dates or no weekday group fits.
func (a *Analyzer) ComputeSignificantDays(dates DateSet) WeekdaySet {
	return a.significantDays(ComputeWeekdayStats(dates))
}

// ComputeSignificantDaysFromMask is ComputeSignificantDays for the encoding
// where included[i] tells whether start+i days is part of the input.
func (a *Analyzer) ComputeSignificantDaysFromMask(start Date, included []bool) WeekdaySet {
	return a.significantDays(ComputeWeekdayStatsFromMask(start, included))
}

// SignificantDaysFromStats runs the significant-day search on precomputed statistics
func (a *Analyzer) SignificantDaysFromStats(stats WeekdayStats) WeekdaySet {
	return a.significantDays(stats)
}

// ComputeCalendarPattern infers the weekly pattern of dates. It returns
// mo.None when no significant day exists or no date falls on one.
func (a *Analyzer) ComputeCalendarPattern(dates DateSet) mo.Option[CalendarPattern] {
	days := a.ComputeSignificantDays(dates)
	if days.IsEmpty() {
		return mo.None[CalendarPattern]()
	}

	first, last, ok := matchingBounds(dates, days)
	if !ok {
		a.logger.Debug("no date falls on a significant day", "days", days.String())
		return mo.None[CalendarPattern]()
	}

	from := intervalStart(first, days)
	to := intervalEnd(last, days)
	additional, excluded := classify(dates, from, to, days)

	a.logger.Debug("calendar pattern computed",
		"from", from.String(),
		"to", to.String(),
		"days", days.String(),
		"additional", len(additional),
		"excluded", len(excluded))

	return mo.Some(CalendarPattern{
		From:            from,
		To:              to,
		SignificantDays: days,
		AdditionalDates: additional,
		ExcludedDates:   excluded,
	})
}

var defaultAnalyzer = New()

// ComputeCalendarPattern runs Analyzer.ComputeCalendarPattern without diagnostics
func ComputeCalendarPattern(dates DateSet) mo.Option[CalendarPattern] {
	return defaultAnalyzer.ComputeCalendarPattern(dates)
}

// ComputeSignificantDays runs Analyzer.ComputeSignificantDays without diagnostics
func ComputeSignificantDays(dates DateSet) WeekdaySet {
	return defaultAnalyzer.ComputeSignificantDays(dates)
}

// ComputeSignificantDaysFromMask runs Analyzer.ComputeSignificantDaysFromMask without diagnostics
func ComputeSignificantDaysFromMask(start Date, included []bool) WeekdaySet {
	return defaultAnalyzer.ComputeSignificantDaysFromMask(start, included)
}
