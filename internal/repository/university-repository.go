package repository

import (
	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"gorm.io/gorm"
)

type UniversityRepository interface {
	FindByID(id uint) (*domain.University, error)
	List(country, search string, limit, offset int) ([]domain.University, int64, error)
	ListActive() ([]domain.University, error)
	SearchByName(q string, limit int) ([]domain.University, error)
	Add(university *domain.University) error
	Save(university *domain.University) error
	ReplaceAll(universities []domain.University) error
}

type universityRepository struct {
	db *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{db: db}
}

func (u *universityRepository) FindByID(id uint) (*domain.University, error) {
	var university domain.University
	if err := u.db.First(&university, id).Error; err != nil {
		return nil, err
	}
	return &university, nil
}

func (u *universityRepository) List(country, search string, limit, offset int) ([]domain.University, int64, error) {
	q := u.db.Model(&domain.University{}).Where("is_active = ?", true)

	if country != "" {
		q = q.Where("country ILIKE ?", "%"+country+"%")
	}
	if search != "" {
		like := "%" + search + "%"
		// courses is jsonb; text matching over it is crude but covers course names
		q = q.Where("name ILIKE ? OR city ILIKE ? OR courses::text ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	universities := []domain.University{}
	err := q.Order("ranking ASC").Limit(limit).Offset(offset).Find(&universities).Error
	if err != nil {
		return nil, 0, err
	}
	return universities, total, nil
}

func (u *universityRepository) ListActive() ([]domain.University, error) {
	universities := []domain.University{}
	err := u.db.Where("is_active = ?", true).Order("ranking ASC").Find(&universities).Error
	if err != nil {
		return nil, err
	}
	return universities, nil
}

func (u *universityRepository) SearchByName(q string, limit int) ([]domain.University, error) {
	universities := []domain.University{}
	err := u.db.
		Where("is_active = ? AND name ILIKE ?", true, "%"+q+"%").
		Limit(limit).
		Find(&universities).Error
	if err != nil {
		return nil, err
	}
	return universities, nil
}

func (u *universityRepository) Add(university *domain.University) error {
	return u.db.Create(university).Error
}

func (u *universityRepository) Save(university *domain.University) error {
	return u.db.Save(university).Error
}

// ReplaceAll wipes and reloads the catalog. Used by the seed command only.
func (u *universityRepository) ReplaceAll(universities []domain.University) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&domain.University{}).Error; err != nil {
			return err
		}
		if len(universities) == 0 {
			return nil
		}
		return tx.Create(&universities).Error
	})
}
