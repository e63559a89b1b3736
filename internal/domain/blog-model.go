package domain

import (
	"time"

	"gorm.io/gorm"
)

type BlogCategory string

const (
	BlogCategoryNews           BlogCategory = "news"
	BlogCategoryTips           BlogCategory = "tips"
	BlogCategorySuccessStories BlogCategory = "success-stories"
	BlogCategoryUpdates        BlogCategory = "updates"
)

func ValidBlogCategory(c BlogCategory) bool {
	switch c {
	case BlogCategoryNews, BlogCategoryTips, BlogCategorySuccessStories, BlogCategoryUpdates:
		return true
	}
	return false
}

type Blog struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Content     string       `gorm:"type:text;not null" json:"content"`
	Excerpt     string       `gorm:"type:text" json:"excerpt,omitempty"`
	AuthorID    uint         `gorm:"not null;index" json:"author_id"`
	AuthorName  string       `gorm:"-" json:"author_name,omitempty"`
	Category    BlogCategory `gorm:"type:varchar(30);not null" json:"category"`
	Tags        []string     `gorm:"serializer:json;type:jsonb" json:"tags,omitempty"`
	Image       string       `gorm:"type:text" json:"image,omitempty"`
	IsPublished bool         `gorm:"default:false;index" json:"is_published"`
	PublishDate *time.Time   `json:"publish_date,omitempty"`
	Views       int64        `gorm:"default:0" json:"views"`
	gorm.Model
}
