package model

import "time"

// PostModel maps to the posts table. The user_id foreign key guarantees
// every post references an existing user at creation time.
type PostModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Text      string    `gorm:"column:text;type:text;not null"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_posts_owner_created,priority:1"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_posts_owner_created,priority:2"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName overrides the default table name.
func (PostModel) TableName() string {
	return "posts"
}
