package model

import "time"

// BookingModel mirrors the 'bookings' table. Item and Booker are preloaded
// on every read because authorization and the wire projection need them.
type BookingModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	ItemID    int64      `gorm:"not null;index"`
	Item      *ItemModel `gorm:"foreignKey:ItemID"`
	BookerID  int64      `gorm:"not null;index"`
	Booker    *UserModel `gorm:"foreignKey:BookerID"`
	StartTime time.Time  `gorm:"not null;index"`
	EndTime   time.Time  `gorm:"not null"`
	Status    string     `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
