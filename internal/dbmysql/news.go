package dbmysql

import (
	"time"
)

// News is a published article. Sections carry the body in display order and
// the Interaction row aggregates engagement against the article.
type News struct {
	NewsID        int64     `gorm:"primaryKey;autoIncrement;column:news_id" json:"news_id"`
	Title         string    `gorm:"column:title;size:200;not null" json:"title"`
	Description   string    `gorm:"column:description;size:200" json:"description"`
	Path          string    `gorm:"column:path;uniqueIndex;size:100;not null" json:"path"`
	Thumbnail     string    `gorm:"column:thumbnail;size:255" json:"thumbnail"`
	UserID        int64     `gorm:"column:user_id;index" json:"user_id"`
	SubcategoryID int64     `gorm:"column:subcategory_id;index" json:"subcategory_id"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Subcategory Subcategory  `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	Sections    []Section    `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"sections"`
	Interaction *Interaction `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"interaction,omitempty"`
}

func (News) TableName() string {
	return "news"
}
