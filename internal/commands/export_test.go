package commands

import (
	"testing"
	"time"
)

// SetClock pins the forecast start for the duration of a test.
func SetClock(tb testing.TB, t time.Time) {
	old := now
	now = func() time.Time { return t }
	tb.Cleanup(func() { now = old })
}
