package services

import (
	"testing"

	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, repo *fakeUniversityRepo) {
	t.Helper()
	unis := []domain.University{
		{
			Name: "IIT Delhi", Country: "India", City: "New Delhi", Ranking: 1, IsActive: true,
			Scholarships: []domain.Scholarship{
				{Name: "Merit Scholarship", MinGPA: 3.5, Percentage: 50},
			},
		},
		{
			Name: "Lovely Professional University", Country: "India", City: "Phagwara", Ranking: 5, IsActive: true,
			Scholarships: []domain.Scholarship{
				{Name: "Entrance Scholarship", MinGPA: 2.5, Percentage: 30},
				{Name: "Topper Award", MinGPA: 3.9, Percentage: 100},
			},
		},
		{
			Name: "Closed College", Country: "India", City: "Nowhere", Ranking: 9, IsActive: false,
			Scholarships: []domain.Scholarship{
				{Name: "Ghost Grant", MinGPA: 0.1},
			},
		},
	}
	require.NoError(t, repo.ReplaceAll(unis))
}

func TestCalculateScholarships(t *testing.T) {
	repo := newFakeUniversityRepo()
	seedCatalog(t, repo)
	svc := NewUniversityService(repo)

	matches, err := svc.CalculateScholarships(3.6)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "IIT Delhi", matches[0].Name)
	require.Len(t, matches[1].Scholarships, 1)
	assert.Equal(t, "Entrance Scholarship", matches[1].Scholarships[0].Name)
}

func TestCalculateScholarshipsLowGPA(t *testing.T) {
	repo := newFakeUniversityRepo()
	seedCatalog(t, repo)
	svc := NewUniversityService(repo)

	matches, err := svc.CalculateScholarships(2.0)
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestCalculateScholarshipsSkipsInactive(t *testing.T) {
	repo := newFakeUniversityRepo()
	seedCatalog(t, repo)
	svc := NewUniversityService(repo)

	matches, err := svc.CalculateScholarships(4.0)
	require.NoError(t, err)
	for _, m := range matches {
		assert.NotEqual(t, "Closed College", m.Name)
	}
}

func TestListPaginationDefaults(t *testing.T) {
	repo := newFakeUniversityRepo()
	seedCatalog(t, repo)
	svc := NewUniversityService(repo)

	out, err := svc.List(dto.UniversityQuery{})
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, int64(2), out.Total)
	assert.Equal(t, int64(1), out.Pages)

	_, err = svc.List(dto.UniversityQuery{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastLimit)
	assert.Equal(t, 10, repo.lastOffset)
}

func TestAutocomplete(t *testing.T) {
	repo := newFakeUniversityRepo()
	seedCatalog(t, repo)
	svc := NewUniversityService(repo)

	out, err := svc.Autocomplete("  lovely ")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Lovely Professional University", out[0].Name)

	out, err = svc.Autocomplete("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCreateUniversityValidation(t *testing.T) {
	svc := NewUniversityService(newFakeUniversityRepo())

	_, err := svc.Create(dto.UniversityUpsertRequest{Name: "X"})
	assert.EqualError(t, err, "name, country and city are required")

	uni, err := svc.Create(dto.UniversityUpsertRequest{Name: "AIIMS", Country: "India", City: "New Delhi"})
	require.NoError(t, err)
	assert.True(t, uni.IsActive)
	assert.NotZero(t, uni.ID)
}

func TestUpdateUniversityPartial(t *testing.T) {
	repo := newFakeUniversityRepo()
	svc := NewUniversityService(repo)

	created, err := svc.Create(dto.UniversityUpsertRequest{Name: "AIIMS", Country: "India", City: "New Delhi", Ranking: 2})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(created.ID, dto.UniversityUpsertRequest{Ranking: 1, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "AIIMS", updated.Name)
	assert.Equal(t, 1, updated.Ranking)
	assert.False(t, updated.IsActive)

	_, err = svc.Update(999, dto.UniversityUpsertRequest{Name: "Nope"})
	assert.EqualError(t, err, "university not found")
}
