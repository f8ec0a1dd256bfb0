package dbmysql

import "time"

// Interaction aggregates engagement for one article. PopularityScore moves in
// lockstep with the engagement rows below it, always inside the same
// transaction as the row change.
type Interaction struct {
	InteractionID   int64     `gorm:"primaryKey;autoIncrement;column:interaction_id" json:"interaction_id"`
	NewsID          int64     `gorm:"column:news_id;uniqueIndex;not null" json:"news_id"`
	PopularityScore int       `gorm:"column:popularity_score;default:0" json:"popularity_score"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	News      News       `gorm:"foreignKey:NewsID" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:InteractionID;constraint:OnDelete:CASCADE" json:"comments"`
	Likes     []Like     `gorm:"foreignKey:InteractionID;constraint:OnDelete:CASCADE" json:"likes"`
	Bookmarks []Bookmark `gorm:"foreignKey:InteractionID;constraint:OnDelete:CASCADE" json:"bookmarks"`
}

// UserInteraction is the per-user mirror of Interaction: it owns the user's
// engagement rows and a contribution score kept in lockstep with them.
type UserInteraction struct {
	UserInteractionID int64     `gorm:"primaryKey;autoIncrement;column:user_interaction_id" json:"user_interaction_id"`
	UserID            int64     `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	ContributionScore int       `gorm:"column:contribution_score;default:0" json:"contribution_score"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:UserInteractionID;constraint:OnDelete:CASCADE" json:"comments"`
	Likes     []Like     `gorm:"foreignKey:UserInteractionID;constraint:OnDelete:CASCADE" json:"likes"`
	Bookmarks []Bookmark `gorm:"foreignKey:UserInteractionID;constraint:OnDelete:CASCADE" json:"bookmarks"`
}
