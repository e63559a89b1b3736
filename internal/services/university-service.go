package services

import (
	"errors"
	"strings"

	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/internal/repository"
)

type UniversityService interface {
	List(query dto.UniversityQuery) (*dto.UniversityListResponse, error)
	Get(id uint) (*domain.University, error)
	CalculateScholarships(gpa float64) ([]dto.ScholarshipMatch, error)
	Autocomplete(q string) ([]dto.UniversitySuggestion, error)

	// admin
	Create(input dto.UniversityUpsertRequest) (*domain.University, error)
	Update(id uint, input dto.UniversityUpsertRequest) (*domain.University, error)
}

type universityService struct {
	repo repository.UniversityRepository
}

func NewUniversityService(repo repository.UniversityRepository) UniversityService {
	return &universityService{repo: repo}
}

func (u *universityService) List(query dto.UniversityQuery) (*dto.UniversityListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	universities, total, err := u.repo.List(query.Country, query.Search, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return &dto.UniversityListResponse{
		Universities: universities,
		Total:        total,
		Pages:        pages,
	}, nil
}

func (u *universityService) Get(id uint) (*domain.University, error) {
	return u.repo.FindByID(id)
}

// CalculateScholarships is a pure filter over the active catalog: only
// universities with at least one qualifying scholarship come back, each
// carrying only the scholarships the GPA meets.
func (u *universityService) CalculateScholarships(gpa float64) ([]dto.ScholarshipMatch, error) {
	universities, err := u.repo.ListActive()
	if err != nil {
		return nil, err
	}

	results := []dto.ScholarshipMatch{}
	for i := range universities {
		qualifying := universities[i].QualifyingScholarships(gpa)
		if len(qualifying) == 0 {
			continue
		}
		results = append(results, dto.ScholarshipMatch{
			ID:           universities[i].ID,
			Name:         universities[i].Name,
			Country:      universities[i].Country,
			Scholarships: qualifying,
		})
	}
	return results, nil
}

func (u *universityService) Autocomplete(q string) ([]dto.UniversitySuggestion, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.UniversitySuggestion{}, nil
	}

	universities, err := u.repo.SearchByName(q, 10)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UniversitySuggestion, 0, len(universities))
	for _, uni := range universities {
		out = append(out, dto.UniversitySuggestion{
			ID:      uni.ID,
			Name:    uni.Name,
			Country: uni.Country,
		})
	}
	return out, nil
}

// ADMIN

func (u *universityService) Create(input dto.UniversityUpsertRequest) (*domain.University, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Country) == "" || strings.TrimSpace(input.City) == "" {
		return nil, errors.New("name, country and city are required")
	}

	uni := &domain.University{
		Name:                  strings.TrimSpace(input.Name),
		Country:               strings.TrimSpace(input.Country),
		City:                  strings.TrimSpace(input.City),
		Ranking:               input.Ranking,
		Description:           input.Description,
		Website:               input.Website,
		Logo:                  input.Logo,
		Courses:               input.Courses,
		Scholarships:          input.Scholarships,
		Facilities:            input.Facilities,
		AdmissionRequirements: input.AdmissionRequirements,
		ApplicationDeadlines:  input.ApplicationDeadlines,
		IsActive:              true,
	}
	if input.IsActive != nil {
		uni.IsActive = *input.IsActive
	}

	if err := u.repo.Add(uni); err != nil {
		return nil, err
	}
	return uni, nil
}

func (u *universityService) Update(id uint, input dto.UniversityUpsertRequest) (*domain.University, error) {
	uni, err := u.repo.FindByID(id)
	if err != nil {
		return nil, errors.New("university not found")
	}

	if strings.TrimSpace(input.Name) != "" {
		uni.Name = strings.TrimSpace(input.Name)
	}
	if strings.TrimSpace(input.Country) != "" {
		uni.Country = strings.TrimSpace(input.Country)
	}
	if strings.TrimSpace(input.City) != "" {
		uni.City = strings.TrimSpace(input.City)
	}
	if input.Ranking != 0 {
		uni.Ranking = input.Ranking
	}
	if input.Description != "" {
		uni.Description = input.Description
	}
	if input.Website != "" {
		uni.Website = input.Website
	}
	if input.Logo != "" {
		uni.Logo = input.Logo
	}
	if input.Courses != nil {
		uni.Courses = input.Courses
	}
	if input.Scholarships != nil {
		uni.Scholarships = input.Scholarships
	}
	if input.Facilities != nil {
		uni.Facilities = input.Facilities
	}
	if input.ApplicationDeadlines != nil {
		uni.ApplicationDeadlines = input.ApplicationDeadlines
	}
	if input.AdmissionRequirements.MinGPA != 0 || input.AdmissionRequirements.EnglishTest != "" || input.AdmissionRequirements.Documents != nil {
		uni.AdmissionRequirements = input.AdmissionRequirements
	}
	if input.IsActive != nil {
		uni.IsActive = *input.IsActive
	}

	if err := u.repo.Save(uni); err != nil {
		return nil, err
	}
	return uni, nil
}
