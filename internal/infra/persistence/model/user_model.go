// Package model holds the GORM persistence models mirroring the relational
// schema. They are mapped to and from domain entities by the postgres
// repositories.
package model

// UserModel mirrors the 'users' table. The email carries the uniqueness
// constraint the domain relies on.
type UserModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(255);not null"`
	Email string `gorm:"type:varchar(512);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
