package entity

// Item is a physical thing offered for sharing by its owner.
// The owner is fixed at creation time and never changes.
type Item struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64 // Set when the item was published in response to a Request.
}
