package dbmysql

import (
	"time"
)

// User mirrors the identity-provider account inside our own database.
// ExternalID is the provider's user id; profile fields (name, avatar) stay
// with the provider and are resolved on demand.
type User struct {
	UserID     int64     `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	ExternalID string    `gorm:"column:external_id;uniqueIndex;size:64;not null" json:"external_id"`
	Role       string    `gorm:"column:role;type:ENUM('member','admin');default:'member'" json:"role"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Interaction *UserInteraction `gorm:"foreignKey:UserID" json:"interaction,omitempty"`
}

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)
