package repository

import (
	"errors"

	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"gorm.io/gorm"
)

// ErrConflict reports a compare-and-set miss: the row exists but was
// changed by someone else since it was read.
var ErrConflict = errors.New("conflicting concurrent update")

type ApplicationRepository interface {
	Create(app *domain.Application) error
	Save(app *domain.Application) error

	FindByID(id uint) (*domain.Application, error)
	FindOwned(id, userID uint) (*domain.Application, error)
	ListByUser(userID uint) ([]domain.Application, error)
	ListAll(limit, offset int) ([]domain.Application, error)

	UpdateStatus(id uint, from, to domain.ApplicationStatus, adminNotes string) error
	CountByStatus(status domain.ApplicationStatus) (int64, error)
	Count() (int64, error)

	Delete(id uint) error
	DeleteByUser(userID uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (a *applicationRepository) Create(app *domain.Application) error {
	return a.db.Create(app).Error
}

func (a *applicationRepository) Save(app *domain.Application) error {
	return a.db.Save(app).Error
}

func (a *applicationRepository) FindByID(id uint) (*domain.Application, error) {
	var app domain.Application
	if err := a.db.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (a *applicationRepository) FindOwned(id, userID uint) (*domain.Application, error) {
	var app domain.Application
	err := a.db.Where("id = ? AND user_id = ?", id, userID).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Lists always come back non-nil so an empty result serializes as [].
func (a *applicationRepository) ListByUser(userID uint) ([]domain.Application, error) {
	apps := []domain.Application{}
	err := a.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *applicationRepository) ListAll(limit, offset int) ([]domain.Application, error) {
	apps := []domain.Application{}
	err := a.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus only fires when the row is still in the expected state, so
// two admins racing on the same application cannot double-apply.
func (a *applicationRepository) UpdateStatus(id uint, from, to domain.ApplicationStatus, adminNotes string) error {
	res := a.db.Model(&domain.Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":      to,
			"admin_notes": adminNotes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

func (a *applicationRepository) CountByStatus(status domain.ApplicationStatus) (int64, error) {
	var n int64
	err := a.db.Model(&domain.Application{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (a *applicationRepository) Count() (int64, error) {
	var n int64
	err := a.db.Model(&domain.Application{}).Count(&n).Error
	return n, err
}

func (a *applicationRepository) Delete(id uint) error {
	return a.db.Unscoped().Delete(&domain.Application{}, id).Error
}

func (a *applicationRepository) DeleteByUser(userID uint) error {
	return a.db.Unscoped().Where("user_id = ?", userID).Delete(&domain.Application{}).Error
}
