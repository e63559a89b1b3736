package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/internal/interfaces"
	"github.com/GoAbroadHQ/portal_service/internal/repository"
	"github.com/GoAbroadHQ/portal_service/pkg/utils"
)

// ContentService covers the two publishable content types, blogs and
// notices.
type ContentService interface {
	// blog
	ListPublishedBlogs(category string, page, limit int) (*dto.BlogListResponse, error)
	GetPublishedBlog(id uint) (*domain.Blog, error)
	CreateBlog(authorID uint, input dto.BlogUpsertRequest) (*domain.Blog, error)
	UpdateBlog(id uint, input dto.BlogUpsertRequest) (*domain.Blog, error)
	DeleteBlog(id uint) error
	ListAllBlogs() ([]domain.Blog, error)

	// notice
	ListActiveNotices() ([]domain.Notice, error)
	ListAllNotices() ([]domain.Notice, error)
	CreateNotice(ctx context.Context, creatorID uint, input dto.NoticeUpsertRequest, image *dto.FileInput) (*domain.Notice, error)
	UpdateNotice(ctx context.Context, id uint, input dto.NoticeUpsertRequest, image *dto.FileInput) (*domain.Notice, error)
	DeleteNotice(ctx context.Context, id uint) error
}

type contentService struct {
	blogRepo   repository.BlogRepository
	noticeRepo repository.NoticeRepository
	userRepo   repository.UserRepository
	uploader   interfaces.Uploader
}

func NewContentService(
	blogRepo repository.BlogRepository,
	noticeRepo repository.NoticeRepository,
	userRepo repository.UserRepository,
	uploader interfaces.Uploader,
) ContentService {
	return &contentService{
		blogRepo:   blogRepo,
		noticeRepo: noticeRepo,
		userRepo:   userRepo,
		uploader:   uploader,
	}
}

// BLOG

func (c *contentService) ListPublishedBlogs(category string, page, limit int) (*dto.BlogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 6
	}

	if category != "" && !domain.ValidBlogCategory(domain.BlogCategory(category)) {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	blogs, total, err := c.blogRepo.ListPublished(category, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	c.attachAuthors(blogs)

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return &dto.BlogListResponse{Blogs: blogs, Total: total, Pages: pages}, nil
}

func (c *contentService) GetPublishedBlog(id uint) (*domain.Blog, error) {
	blog, err := c.blogRepo.FindByID(id)
	if err != nil || !blog.IsPublished {
		return nil, errors.New("blog not found")
	}

	if err := c.blogRepo.IncrementViews(id); err != nil {
		log.Printf("increment views for blog %d: %v", id, err)
	} else {
		blog.Views++
	}

	if author, err := c.userRepo.FindUserById(blog.AuthorID); err == nil && author != nil {
		blog.AuthorName = author.Name
	}
	return blog, nil
}

func (c *contentService) CreateBlog(authorID uint, input dto.BlogUpsertRequest) (*domain.Blog, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, errors.New("title and content are required")
	}
	category := domain.BlogCategory(input.Category)
	if !domain.ValidBlogCategory(category) {
		return nil, fmt.Errorf("invalid category: %s", input.Category)
	}

	blog := &domain.Blog{
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		AuthorID:    authorID,
		Category:    category,
		Tags:        input.Tags,
		Image:       input.Image,
		IsPublished: input.IsPublished,
	}
	if input.IsPublished {
		now := time.Now()
		blog.PublishDate = &now
	}

	if err := c.blogRepo.Create(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (c *contentService) UpdateBlog(id uint, input dto.BlogUpsertRequest) (*domain.Blog, error) {
	blog, err := c.blogRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("blog not found")
	}

	if strings.TrimSpace(input.Title) != "" {
		blog.Title = strings.TrimSpace(input.Title)
	}
	if strings.TrimSpace(input.Content) != "" {
		blog.Content = input.Content
	}
	if input.Excerpt != "" {
		blog.Excerpt = input.Excerpt
	}
	if input.Category != "" {
		category := domain.BlogCategory(input.Category)
		if !domain.ValidBlogCategory(category) {
			return nil, fmt.Errorf("invalid category: %s", input.Category)
		}
		blog.Category = category
	}
	if input.Tags != nil {
		blog.Tags = input.Tags
	}
	if input.Image != "" {
		blog.Image = input.Image
	}

	if input.IsPublished && !blog.IsPublished {
		now := time.Now()
		blog.PublishDate = &now
	}
	if !input.IsPublished {
		blog.PublishDate = nil
	}
	blog.IsPublished = input.IsPublished

	if err := c.blogRepo.Save(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (c *contentService) DeleteBlog(id uint) error {
	if _, err := c.blogRepo.FindByID(id); err != nil {
		return errors.New("blog not found")
	}
	return c.blogRepo.Delete(id)
}

func (c *contentService) ListAllBlogs() ([]domain.Blog, error) {
	blogs, err := c.blogRepo.ListAll()
	if err != nil {
		return nil, err
	}
	c.attachAuthors(blogs)
	return blogs, nil
}

func (c *contentService) attachAuthors(blogs []domain.Blog) {
	for i := range blogs {
		if author, err := c.userRepo.FindUserById(blogs[i].AuthorID); err == nil && author != nil {
			blogs[i].AuthorName = author.Name
		}
	}
}

// NOTICE

func (c *contentService) ListActiveNotices() ([]domain.Notice, error) {
	return c.noticeRepo.ListActive()
}

func (c *contentService) ListAllNotices() ([]domain.Notice, error) {
	return c.noticeRepo.ListAll()
}

func (c *contentService) CreateNotice(ctx context.Context, creatorID uint, input dto.NoticeUpsertRequest, image *dto.FileInput) (*domain.Notice, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, errors.New("title and content are required")
	}

	notice := &domain.Notice{
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		IsActive:    true,
		CreatedByID: creatorID,
	}

	if image != nil {
		url, err := c.storeNoticeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		notice.Image = url
	}

	if err := c.noticeRepo.Create(notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (c *contentService) UpdateNotice(ctx context.Context, id uint, input dto.NoticeUpsertRequest, image *dto.FileInput) (*domain.Notice, error) {
	notice, err := c.noticeRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("notice not found")
	}

	if strings.TrimSpace(input.Title) != "" {
		notice.Title = strings.TrimSpace(input.Title)
	}
	if strings.TrimSpace(input.Content) != "" {
		notice.Content = input.Content
	}
	if image != nil {
		url, err := c.storeNoticeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		notice.Image = url
	}

	if err := c.noticeRepo.Save(notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (c *contentService) DeleteNotice(ctx context.Context, id uint) error {
	if _, err := c.noticeRepo.FindByID(id); err != nil {
		return errors.New("notice not found")
	}
	return c.noticeRepo.Delete(id)
}

const noticeImageMaxWidth = 1600

func (c *contentService) storeNoticeImage(ctx context.Context, image *dto.FileInput) (string, error) {
	if !strings.HasPrefix(image.ContentType, "image/") {
		return "", errors.New("only image files are allowed")
	}
	if c.uploader == nil {
		return "", errors.New("storage backend not configured")
	}

	normalized, err := utils.NormalizeImage(image.Data, noticeImageMaxWidth, 85)
	if err != nil {
		return "", fmt.Errorf("invalid image: %w", err)
	}
	filename := strings.TrimSuffix(image.Filename, filepath.Ext(image.Filename)) + ".jpg"

	res, err := c.uploader.Upload(ctx, "notices", filename, normalized, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return res.URL, nil
}
