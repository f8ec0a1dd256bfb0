package dbmysql

import "time"

type Category struct {
	CategoryID int64     `gorm:"primaryKey;autoIncrement;column:category_id" json:"category_id"`
	Name       string    `gorm:"column:name;size:100;uniqueIndex;not null" json:"name"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`
}

type Subcategory struct {
	SubcategoryID int64     `gorm:"primaryKey;autoIncrement;column:subcategory_id" json:"subcategory_id"`
	CategoryID    int64     `gorm:"column:category_id;index" json:"category_id"`
	Name          string    `gorm:"column:name;size:100;not null" json:"name"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
