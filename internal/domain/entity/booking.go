package entity

import "time"

// BookingStatus is the stored lifecycle state of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	// StatusCanceled is part of the stored taxonomy but no transition
	// produces it; it exists for forward compatibility of the schema.
	StatusCanceled BookingStatus = "CANCELED"
)

// Booking is a reservation of an item for a time window.
// Item and Booker are materialized together with the booking so that
// authorization checks (owner vs booker) need no extra lookups.
type Booking struct {
	ID     int64
	Item   Item
	Booker User
	Start  time.Time
	End    time.Time
	Status BookingStatus
}

// IsOwner reports whether userID owns the booked item.
func (b *Booking) IsOwner(userID int64) bool {
	return b.Item.OwnerID == userID
}

// IsParticipant reports whether userID is the booker or the item's owner.
func (b *Booking) IsParticipant(userID int64) bool {
	return b.Booker.ID == userID || b.IsOwner(userID)
}
