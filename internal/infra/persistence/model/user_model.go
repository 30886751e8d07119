// Package model contains the GORM persistence models. They mirror the
// SQL schema and are mapped to and from pure domain entities at the
// repository boundary.
package model

import "time"

// UserModel maps to the users table. The unique index on email is the
// authoritative uniqueness guarantee; the application-level existence
// check merely gives a friendlier error in the common case.
type UserModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:idx_users_email"`
	PasswordHash string    `gorm:"column:password;size:255;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides the default table name.
func (UserModel) TableName() string {
	return "users"
}
