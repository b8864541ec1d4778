package entity

import "time"

// Request is a user's published description of an item they are looking
// for. Other users may offer items in response by linking them to the
// request.
type Request struct {
	ID          int64
	AuthorID    int64
	Description string
	Created     time.Time
}
