package entity

import "time"

// Comment is feedback left on an item by a user who has actually had it
// (a completed booking is the precondition, enforced by the item service).
type Comment struct {
	ID      int64
	ItemID  int64
	Author  User
	Text    string
	Created time.Time
}
