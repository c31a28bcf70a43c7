package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/mo"

	"github.com/cyp0633/calpattern/internal/config"
	"github.com/cyp0633/calpattern/internal/xcal"
	"github.com/cyp0633/calpattern/pattern"
	"github.com/cyp0633/calpattern/recurrence"
)

type patternJSON struct {
	From            string   `json:"from"`
	To              string   `json:"to"`
	SignificantDays []string `json:"significantDays"`
	AdditionalDates []string `json:"additionalDates"`
	ExcludedDates   []string `json:"excludedDates"`
}

func printPattern(w io.Writer, result mo.Option[pattern.CalendarPattern], out config.OutputConfig) error {
	p, ok := result.Get()
	if !ok {
		if out.Format == "json" {
			_, err := fmt.Fprintln(w, "null")
			return err
		}
		_, err := fmt.Fprintln(w, "no pattern")
		return err
	}

	opts := recurrence.EventOptions{Summary: out.Summary}
	switch out.Format {
	case "ics":
		return recurrence.EncodeCalendar(w, p, opts)
	case "xcal":
		return xcal.Write(w, p, opts)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSON(p))
	default:
		return printText(w, p)
	}
}

func toJSON(p pattern.CalendarPattern) patternJSON {
	return patternJSON{
		From:            p.From.String(),
		To:              p.To.String(),
		SignificantDays: strings.Split(p.SignificantDays.String(), ","),
		AdditionalDates: dateStrings(p.AdditionalDates),
		ExcludedDates:   dateStrings(p.ExcludedDates),
	}
}

func printText(w io.Writer, p pattern.CalendarPattern) error {
	_, err := fmt.Fprintf(w, "from:       %s\nto:         %s\ndays:       %s\nexcluded:   %s\nadditional: %s\n",
		p.From, p.To, p.SignificantDays,
		strings.Join(dateStrings(p.ExcludedDates), ", "),
		strings.Join(dateStrings(p.AdditionalDates), ", "))
	return err
}

func printStats(w io.Writer, stats pattern.WeekdayStats, significant pattern.WeekdaySet) {
	for _, s := range stats {
		marker := ""
		if significant.Contains(s.Weekday) {
			marker = " *"
		}
		fmt.Fprintf(w, "%-9s %5d %6.2f%%%s\n", s.Weekday, s.Count, s.Percentage, marker)
	}
	fmt.Fprintf(w, "total     %5d\n", stats.Total())
}

func dateStrings(dates []pattern.Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}
