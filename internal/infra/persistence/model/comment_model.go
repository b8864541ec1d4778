package model

import "time"

// CommentModel mirrors the 'comments' table. The author is preloaded on
// reads because the wire DTO exposes the author name.
type CommentModel struct {
	ID       int64      `gorm:"primaryKey;autoIncrement"`
	ItemID   int64      `gorm:"not null;index"`
	Item     *ItemModel `gorm:"foreignKey:ItemID"`
	AuthorID int64      `gorm:"not null;index"`
	Author   *UserModel `gorm:"foreignKey:AuthorID"`
	Text     string     `gorm:"type:text;not null"`
	Created  time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
