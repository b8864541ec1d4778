package impl

import (
	"io"
	"log/slog"
	"time"

	"shareit/internal/domain/service"
)

// fixedClock pins time for deterministic state-machine decisions.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// testNow is the instant every test decision is evaluated at.
var testNow = time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)

func newTestClock() service.Clock {
	return fixedClock{now: testNow}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
