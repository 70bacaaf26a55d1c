package domain

import "time"

// TimePrecision is the resolution at which timestamps are stored. MongoDB
// dates keep milliseconds, so every persisted time is cut to that.
const TimePrecision = time.Millisecond

// Timestamp normalises t to UTC at TimePrecision.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(TimePrecision)
}
