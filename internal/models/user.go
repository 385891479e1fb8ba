package models

import "time"

// User is the owner record for nodes. UserID is the external identity issued
// by the authorizer service; the numeric primary key is local to this database.
type User struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"type:char(36);uniqueIndex;not null"`
	Email     string `gorm:"size:254"`
	Fullname  string `gorm:"size:80"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "user"
}
