package model

import "time"

// RequestModel mirrors the 'requests' table.
type RequestModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	AuthorID    int64      `gorm:"not null;index"`
	Author      *UserModel `gorm:"foreignKey:AuthorID"`
	Description string     `gorm:"type:text;not null"`
	Created     time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}
