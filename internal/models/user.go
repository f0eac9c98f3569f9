package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

type UserProfile struct {
	ID              uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Username        string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Bio             string         `gorm:"type:text" json:"bio"`
	AvatarKey       string         `gorm:"size:255" json:"avatar_key"`
	IsChef          bool           `gorm:"not null;default:false" json:"is_chef"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserFollow records that Follower follows Followee.
type UserFollow struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	FollowerID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}
