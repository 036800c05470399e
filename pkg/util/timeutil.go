package util

import "time"

// NowUTC is the clock used by sessions and the assistant. Components hold it
// as a func field so tests can pin time.
func NowUTC() time.Time {
	return time.Now().UTC()
}
