package dbmysql

import "time"

const (
	SectionText  = "text"
	SectionImage = "image"
)

// Section is one ordered block of a news body. ContentType tags the payload:
// text sections fill TextContent, image sections fill the Image* columns.
// The write path always replaces an article's sections as a whole set, so
// OrderIndex is regenerated 0..n-1 on every write.
type Section struct {
	SectionID   int64  `gorm:"primaryKey;autoIncrement;column:section_id" json:"section_id"`
	NewsID      int64  `gorm:"column:news_id;index;not null" json:"news_id"`
	OrderIndex  int    `gorm:"column:order_index;not null" json:"order_index"`
	Title       string `gorm:"column:title;size:200" json:"title"`
	Separator   bool   `gorm:"column:separator;default:false" json:"separator"`
	ContentType string `gorm:"column:content_type;type:ENUM('text','image');not null" json:"content_type"`

	TextContent  *string `gorm:"column:text_content;type:text" json:"text_content,omitempty"`
	ImageURL     *string `gorm:"column:image_url;size:500" json:"image_url,omitempty"`
	ImageAlt     *string `gorm:"column:image_alt;size:200" json:"image_alt,omitempty"`
	ImageCaption *string `gorm:"column:image_caption;size:200" json:"image_caption,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
