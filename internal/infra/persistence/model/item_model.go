package model

// ItemModel mirrors the 'items' table. OwnerID references users.id and is
// immutable after insert; RequestID is set when the item answers a request.
type ItemModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64      `gorm:"not null;index"`
	Owner       *UserModel `gorm:"foreignKey:OwnerID"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text;not null"`
	Available   bool       `gorm:"not null"`
	RequestID   *int64     `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
