package utils

import "time"

// TimestampLayout is the fixed-precision UTC instant format used across the
// snapshot store, prediction log and summary file.
const TimestampLayout = "2006-01-02 15:04:05"

// TimeNowUTC returns the current time in UTC.
func TimeNowUTC() time.Time {
	return time.Now().UTC()
}

// FormatTimestamp renders a time in the shared log timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp in the shared log layout as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}
