// ABOUTME: Builds the recurrence rule microformat Folk requires on reminders
// ABOUTME: One-shot reminders still carry FREQ, expressed as FREQ=DAILY;COUNT=1
package folk

import (
	"fmt"
	"time"
)

const dtstartLayout = "20060102T150405"

// Trigger times arrive as ISO-8601 strings; timestamps without an offset are
// read as UTC.
var triggerLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTriggerTime parses an ISO-8601 timestamp with an optional UTC offset
// or trailing Z. Unparsable input is a ValidationError.
func ParseTriggerTime(value string) (time.Time, error) {
	for _, layout := range triggerLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, validationf(
		"invalid trigger_time %q: expected an ISO-8601 timestamp like 2026-01-15T09:00:00Z", value)
}

// OneTimeRecurrenceRule renders the two-line DTSTART/RRULE form for a
// reminder that fires once at t. The DTSTART line uses the TZID=UTC form
// with the time converted to UTC and no trailing Z.
func OneTimeRecurrenceRule(t time.Time) string {
	return fmt.Sprintf("DTSTART;TZID=UTC:%s\nRRULE:FREQ=DAILY;COUNT=1", t.UTC().Format(dtstartLayout))
}

// BuildRecurrenceRule derives the one-shot recurrence rule for an ISO-8601
// trigger time string.
func BuildRecurrenceRule(triggerTime string) (string, error) {
	t, err := ParseTriggerTime(triggerTime)
	if err != nil {
		return "", err
	}
	return OneTimeRecurrenceRule(t), nil
}
