// Package dateutil expands and validates ISO date ranges for batch
// exports.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the wire format for export dates.
const Layout = "2006-01-02"

// Parse validates a single export date.
func Parse(date string) (time.Time, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
	}
	return t, nil
}

// ExpandRange returns every date from start to end inclusive. A start
// after end is an input-contract violation reported as an error, never a
// panic.
func ExpandRange(start, end string) ([]string, error) {
	from, err := Parse(start)
	if err != nil {
		return nil, err
	}
	to, err := Parse(end)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, fmt.Errorf("invalid date range: start %s is after end %s", start, end)
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(Layout))
	}
	return dates, nil
}
