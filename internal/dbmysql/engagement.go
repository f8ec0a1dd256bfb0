package dbmysql

import "time"

// Like and Bookmark are toggle rows: at most one per (interaction, user
// interaction) pair, enforced by the composite unique index.

type Like struct {
	LikeID            int64     `gorm:"primaryKey;autoIncrement;column:like_id" json:"like_id"`
	InteractionID     int64     `gorm:"column:interaction_id;not null;uniqueIndex:idx_like_pair" json:"interaction_id"`
	UserInteractionID int64     `gorm:"column:user_interaction_id;not null;uniqueIndex:idx_like_pair" json:"user_interaction_id"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type Bookmark struct {
	BookmarkID        int64     `gorm:"primaryKey;autoIncrement;column:bookmark_id" json:"bookmark_id"`
	InteractionID     int64     `gorm:"column:interaction_id;not null;uniqueIndex:idx_bookmark_pair" json:"interaction_id"`
	UserInteractionID int64     `gorm:"column:user_interaction_id;not null;uniqueIndex:idx_bookmark_pair" json:"user_interaction_id"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
