// Package clock provides the production time source.
package clock

import (
	"time"

	"shareit/internal/domain/service"
)

// systemClock reads the wall clock.
type systemClock struct{}

// NewSystemClock is the constructor for the wall-clock time source.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
