// Package service defines domain-level collaborator interfaces implemented
// by the infrastructure layer.
package service

import "time"

// Clock supplies the current instant. The booking state machine and the
// comment gate read time through it so tests can pin "now".
type Clock interface {
	Now() time.Time
}
