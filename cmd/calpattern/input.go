package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cyp0633/calpattern/pattern"
	"github.com/cyp0633/calpattern/recurrence"
)

// parseDates picks the reader by file extension
func parseDates(r io.Reader, name string) (pattern.DateSet, error) {
	if strings.EqualFold(filepath.Ext(name), ".ics") {
		return recurrence.DecodeDates(r)
	}
	return parseDateLines(r)
}

// parseDateLines reads one ISO date per line. Blank lines and lines starting
// with # are skipped, trailing text after whitespace is ignored.
func parseDateLines(r io.Reader) (pattern.DateSet, error) {
	dates := pattern.NewDateSet()
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		d, err := pattern.ParseDate(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		dates.Add(d)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dates: %w", err)
	}
	return dates, nil
}

// parseMask turns a string of 0 and 1 into the boolean encoding. Whitespace is ignored.
func parseMask(bits string) ([]bool, error) {
	mask := make([]bool, 0, len(bits))
	for i, c := range bits {
		switch c {
		case '0':
			mask = append(mask, false)
		case '1':
			mask = append(mask, true)
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("invalid mask character %q at offset %d", c, i)
		}
	}
	return mask, nil
}
