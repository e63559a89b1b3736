package repository

import (
	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(blog *domain.Blog) error
	Save(blog *domain.Blog) error
	FindByID(id uint) (*domain.Blog, error)
	ListPublished(category string, limit, offset int) ([]domain.Blog, int64, error)
	ListAll() ([]domain.Blog, error)
	IncrementViews(id uint) error
	Delete(id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (b *blogRepository) Create(blog *domain.Blog) error {
	return b.db.Create(blog).Error
}

func (b *blogRepository) Save(blog *domain.Blog) error {
	return b.db.Save(blog).Error
}

func (b *blogRepository) FindByID(id uint) (*domain.Blog, error) {
	var blog domain.Blog
	if err := b.db.First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (b *blogRepository) ListPublished(category string, limit, offset int) ([]domain.Blog, int64, error) {
	q := b.db.Model(&domain.Blog{}).Where("is_published = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	blogs := []domain.Blog{}
	err := q.Order("publish_date DESC").Limit(limit).Offset(offset).Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (b *blogRepository) ListAll() ([]domain.Blog, error) {
	blogs := []domain.Blog{}
	err := b.db.Order("created_at DESC").Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (b *blogRepository) IncrementViews(id uint) error {
	return b.db.Model(&domain.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (b *blogRepository) Delete(id uint) error {
	return b.db.Unscoped().Delete(&domain.Blog{}, id).Error
}
