package dbmysql

import "time"

// Comment belongs to one article-side Interaction and one author-side
// UserInteraction.
type Comment struct {
	CommentID         int64     `gorm:"primaryKey;autoIncrement;column:comment_id" json:"comment_id"`
	Text              string    `gorm:"column:text;size:500;not null" json:"text"`
	InteractionID     int64     `gorm:"column:interaction_id;index;not null" json:"interaction_id"`
	UserInteractionID int64     `gorm:"column:user_interaction_id;index;not null" json:"user_interaction_id"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Interaction     Interaction     `gorm:"foreignKey:InteractionID" json:"interaction,omitempty"`
	UserInteraction UserInteraction `gorm:"foreignKey:UserInteractionID" json:"user_interaction,omitempty"`
}
