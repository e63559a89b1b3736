package dto

import "github.com/GoAbroadHQ/portal_service/internal/domain"

type BlogUpsertRequest struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags,omitempty"`
	Image       string   `json:"image,omitempty"`
	IsPublished bool     `json:"is_published"`
}

type BlogListResponse struct {
	Blogs []domain.Blog `json:"blogs"`
	Total int64         `json:"total"`
	Pages int64         `json:"pages"`
}

type NoticeUpsertRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
