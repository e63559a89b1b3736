package domain

import "gorm.io/gorm"

type Notice struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Content     string `gorm:"type:text;not null" json:"content"`
	Image       string `gorm:"type:text" json:"image,omitempty"`
	IsActive    bool   `gorm:"default:true;index" json:"is_active"`
	CreatedByID uint   `gorm:"not null;index" json:"created_by_id"`
	gorm.Model
}
