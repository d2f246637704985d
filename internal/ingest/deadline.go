package ingest

import (
	"fmt"
	"strings"
	"time"
)

// DeadlineUnspecified is the sentinel used when neither the explicit date nor
// the submission timestamp yields a parseable date. It keeps the record alive
// instead of propagating an invalid date downstream.
const DeadlineUnspecified = "Deadline unspecified"

// deadlineDisplayFormat renders "September 30, 2025".
const deadlineDisplayFormat = "January 2, 2006"

// submissionWindow is added to the form timestamp when no explicit date was
// supplied: postings are assumed open for 30 calendar days.
const submissionWindow = 30

// dateLayouts are tried in order. Day-first layouts come before month-first
// because the form feed writes dd/mm/yyyy timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// parseDate attempts each known layout in order.
func parseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", text)
}

// deadlineStrategy is one resolution step. It reports whether it produced a
// display deadline from the raw explicit-date and timestamp cells.
type deadlineStrategy func(explicitDate, timestamp string) (string, bool)

// deadlineChain is tried in order; the first success wins. This replaces
// nested parse-and-recover with an explicit priority list:
//  1. explicit date cell, formatted
//  2. submission timestamp plus the 30-day window
func deadlineChain() []deadlineStrategy {
	return []deadlineStrategy{
		func(explicitDate, _ string) (string, bool) {
			t, err := parseDate(explicitDate)
			if err != nil {
				return "", false
			}
			return t.Format(deadlineDisplayFormat), true
		},
		func(_, timestamp string) (string, bool) {
			t, err := parseDate(timestamp)
			if err != nil {
				return "", false
			}
			return t.AddDate(0, 0, submissionWindow).Format(deadlineDisplayFormat), true
		},
	}
}

// ResolveDeadline produces the human-readable application deadline for a row.
func ResolveDeadline(explicitDate, timestamp string) string {
	for _, strategy := range deadlineChain() {
		if deadline, ok := strategy(explicitDate, timestamp); ok {
			return deadline
		}
	}
	return DeadlineUnspecified
}
