package repository

import (
	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"gorm.io/gorm"
)

type NoticeRepository interface {
	Create(notice *domain.Notice) error
	Save(notice *domain.Notice) error
	FindByID(id uint) (*domain.Notice, error)
	ListActive() ([]domain.Notice, error)
	ListAll() ([]domain.Notice, error)
	Delete(id uint) error
}

type noticeRepository struct {
	db *gorm.DB
}

func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (n *noticeRepository) Create(notice *domain.Notice) error {
	return n.db.Create(notice).Error
}

func (n *noticeRepository) Save(notice *domain.Notice) error {
	return n.db.Save(notice).Error
}

func (n *noticeRepository) FindByID(id uint) (*domain.Notice, error) {
	var notice domain.Notice
	if err := n.db.First(&notice, id).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

func (n *noticeRepository) ListActive() ([]domain.Notice, error) {
	notices := []domain.Notice{}
	err := n.db.Where("is_active = ?", true).Order("created_at DESC").Find(&notices).Error
	if err != nil {
		return nil, err
	}
	return notices, nil
}

func (n *noticeRepository) ListAll() ([]domain.Notice, error) {
	notices := []domain.Notice{}
	err := n.db.Order("created_at DESC").Find(&notices).Error
	if err != nil {
		return nil, err
	}
	return notices, nil
}

func (n *noticeRepository) Delete(id uint) error {
	return n.db.Unscoped().Delete(&domain.Notice{}, id).Error
}
