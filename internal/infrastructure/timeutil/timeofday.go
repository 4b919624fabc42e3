package timeutil

import (
	"strconv"
	"strings"
)

// ParseHourMinute parses a wire-form "HH:MM" time of day.
// The second return value is false for malformed or missing input;
// callers treat that as "field absent" rather than an error.
func ParseHourMinute(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}

// HourOfDay extracts the hour from a wire-form "HH:MM" time.
// The second return value is false for malformed input.
func HourOfDay(s string) (int, bool) {
	hour, _, ok := ParseHourMinute(s)
	if !ok {
		return 0, false
	}
	return hour, true
}

// MinutesOfDay converts a wire-form "HH:MM" time into minutes since
// midnight. The second return value is false for malformed input.
func MinutesOfDay(s string) (int, bool) {
	hour, minute, ok := ParseHourMinute(s)
	if !ok {
		return 0, false
	}
	return hour*60 + minute, true
}
