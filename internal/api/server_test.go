package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"github.com/GoAbroadHQ/portal_service/internal/helper"
	"github.com/GoAbroadHQ/portal_service/internal/interfaces"
	"github.com/GoAbroadHQ/portal_service/internal/repository"
	"github.com/GoAbroadHQ/portal_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memory-backed repositories so the full route stack runs without Postgres

type memUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func (m *memUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	user.ID = m.nextID
	m.nextID++
	cp := *user
	m.users[user.ID] = &cp
	return user, nil
}

func (m *memUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) FindUserById(userID uint) (*domain.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) SaveUser(user *domain.User) error {
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) ListUsers(limit, offset int) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memUserRepo) DeleteUser(userID uint) error {
	delete(m.users, userID)
	return nil
}

type memAppRepo struct {
	apps   map[uint]*domain.Application
	nextID uint
}

func (m *memAppRepo) Create(app *domain.Application) error {
	app.ID = m.nextID
	m.nextID++
	cp := *app
	m.apps[app.ID] = &cp
	return nil
}

func (m *memAppRepo) Save(app *domain.Application) error {
	cp := *app
	m.apps[app.ID] = &cp
	return nil
}

func (m *memAppRepo) FindByID(id uint) (*domain.Application, error) {
	a, ok := m.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAppRepo) FindOwned(id, userID uint) (*domain.Application, error) {
	a, ok := m.apps[id]
	if !ok || a.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAppRepo) ListByUser(userID uint) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range m.apps {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memAppRepo) ListAll(limit, offset int) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range m.apps {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memAppRepo) UpdateStatus(id uint, from, to domain.ApplicationStatus, adminNotes string) error {
	a, ok := m.apps[id]
	if !ok {
		return repository.ErrNotFound
	}
	if a.Status != from {
		return repository.ErrConflict
	}
	a.Status = to
	a.AdminNotes = adminNotes
	return nil
}

func (m *memAppRepo) CountByStatus(status domain.ApplicationStatus) (int64, error) {
	var n int64
	for _, a := range m.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *memAppRepo) Count() (int64, error) { return int64(len(m.apps)), nil }

func (m *memAppRepo) Delete(id uint) error {
	delete(m.apps, id)
	return nil
}

func (m *memAppRepo) DeleteByUser(userID uint) error {
	for id, a := range m.apps {
		if a.UserID == userID {
			delete(m.apps, id)
		}
	}
	return nil
}

type memUniversityRepo struct {
	unis   map[uint]*domain.University
	nextID uint
}

func (m *memUniversityRepo) FindByID(id uint) (*domain.University, error) {
	u, ok := m.unis[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUniversityRepo) List(country, search string, limit, offset int) ([]domain.University, int64, error) {
	out, err := m.ListActive()
	return out, int64(len(out)), err
}

func (m *memUniversityRepo) ListActive() ([]domain.University, error) {
	out := []domain.University{}
	for _, u := range m.unis {
		if u.IsActive {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ranking < out[j].Ranking })
	return out, nil
}

func (m *memUniversityRepo) SearchByName(q string, limit int) ([]domain.University, error) {
	return m.ListActive()
}

func (m *memUniversityRepo) Add(u *domain.University) error {
	u.ID = m.nextID
	m.nextID++
	cp := *u
	m.unis[u.ID] = &cp
	return nil
}

func (m *memUniversityRepo) Save(u *domain.University) error {
	cp := *u
	m.unis[u.ID] = &cp
	return nil
}

func (m *memUniversityRepo) ReplaceAll(unis []domain.University) error {
	m.unis = map[uint]*domain.University{}
	for i := range unis {
		m.Add(&unis[i])
	}
	return nil
}

type memBlogRepo struct{ blogs map[uint]*domain.Blog }

func (m *memBlogRepo) Create(b *domain.Blog) error {
	b.ID = uint(len(m.blogs) + 1)
	cp := *b
	m.blogs[b.ID] = &cp
	return nil
}
func (m *memBlogRepo) Save(b *domain.Blog) error {
	cp := *b
	m.blogs[b.ID] = &cp
	return nil
}
func (m *memBlogRepo) FindByID(id uint) (*domain.Blog, error) {
	b, ok := m.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}
func (m *memBlogRepo) ListPublished(category string, limit, offset int) ([]domain.Blog, int64, error) {
	out := []domain.Blog{}
	for _, b := range m.blogs {
		if b.IsPublished {
			out = append(out, *b)
		}
	}
	return out, int64(len(out)), nil
}
func (m *memBlogRepo) ListAll() ([]domain.Blog, error) {
	out := []domain.Blog{}
	for _, b := range m.blogs {
		out = append(out, *b)
	}
	return out, nil
}
func (m *memBlogRepo) IncrementViews(id uint) error {
	if b, ok := m.blogs[id]; ok {
		b.Views++
		return nil
	}
	return repository.ErrNotFound
}
func (m *memBlogRepo) Delete(id uint) error {
	delete(m.blogs, id)
	return nil
}

type memNoticeRepo struct{ notices map[uint]*domain.Notice }

func (m *memNoticeRepo) Create(n *domain.Notice) error {
	n.ID = uint(len(m.notices) + 1)
	cp := *n
	m.notices[n.ID] = &cp
	return nil
}
func (m *memNoticeRepo) Save(n *domain.Notice) error {
	cp := *n
	m.notices[n.ID] = &cp
	return nil
}
func (m *memNoticeRepo) FindByID(id uint) (*domain.Notice, error) {
	n, ok := m.notices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *n
	return &cp, nil
}
func (m *memNoticeRepo) ListActive() ([]domain.Notice, error) {
	out := []domain.Notice{}
	for _, n := range m.notices {
		if n.IsActive {
			out = append(out, *n)
		}
	}
	return out, nil
}
func (m *memNoticeRepo) ListAll() ([]domain.Notice, error) {
	out := []domain.Notice{}
	for _, n := range m.notices {
		out = append(out, *n)
	}
	return out, nil
}
func (m *memNoticeRepo) Delete(id uint) error {
	delete(m.notices, id)
	return nil
}

type memUploader struct{}

func (memUploader) Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (*interfaces.UploadResult, error) {
	id := folder + "/" + filename
	return &interfaces.UploadResult{URL: "/uploads/" + id, PublicID: id}, nil
}

func (memUploader) Delete(ctx context.Context, publicID string) error { return nil }

type testEnv struct {
	app   *fiber.App
	users *memUserRepo
	unis  *memUniversityRepo
	auth  helper.Auth
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := &memUserRepo{users: map[uint]*domain.User{}, nextID: 1}
	apps := &memAppRepo{apps: map[uint]*domain.Application{}, nextID: 1}
	unis := &memUniversityRepo{unis: map[uint]*domain.University{}, nextID: 1}
	blogs := &memBlogRepo{blogs: map[uint]*domain.Blog{}}
	notices := &memNoticeRepo{notices: map[uint]*domain.Notice{}}

	auth := helper.SetupAuth("route-test-secret")
	uploader := memUploader{}

	userSvc := services.NewUserService(users, apps, uploader, nil, auth)
	appSvc := services.NewApplicationService(apps, users, unis, uploader, nil)
	uniSvc := services.NewUniversityService(unis)
	contentSvc := services.NewContentService(blogs, notices, users, uploader)

	app := fiber.New()
	SetupRoutes(app, RouteDeps{
		Auth:       auth,
		UserSvc:    userSvc,
		AppSvc:     appSvc,
		UniSvc:     uniSvc,
		ContentSvc: contentSvc,
	})

	return &testEnv{app: app, users: users, unis: unis, auth: auth}
}

func (e *testEnv) seedAdmin(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin, err := e.users.CreateUser(&domain.User{
		Name:         "Admin",
		Email:        "admin@studyabroad.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
	require.NoError(t, err)

	token, err := e.auth.GenerateToken(int(admin.ID), admin.Email, true)
	require.NoError(t, err)
	return token
}

func jsonRequest(method, target, token string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

func TestApplicationLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	// register
	resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Sita Sharma",
		"email":    "sita@example.com",
		"password": "secret123",
		"phone":    "+9779812345678",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registered struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, resp, &registered)
	require.NotEmpty(t, registered.Token)

	// complete the KYC profile
	resp, err = env.app.Test(jsonRequest(http.MethodPut, "/api/profile/kyc", registered.Token, fiber.Map{
		"date_of_birth": "2000-01-15",
		"nationality":   "Nepali",
		"academic": fiber.Map{
			"highest_qualification": "Bachelor",
			"institution":           "Tribhuvan University",
			"gpa":                   3.6,
			"graduation_year":       2023,
		},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = env.app.Test(jsonRequest(http.MethodGet, "/api/profile/status", registered.Token, nil), -1)
	require.NoError(t, err)
	var status struct {
		ProfileComplete bool `json:"profile_complete"`
	}
	decodeBody(t, resp, &status)
	assert.True(t, status.ProfileComplete)

	// submit an application
	resp, err = env.app.Test(jsonRequest(http.MethodPost, "/api/applications/", registered.Token, fiber.Map{
		"custom_university": "Kathmandu University",
		"course":            "MBA",
		"intake":            "Fall 2026",
		"personal_info": fiber.Map{
			"full_name":       "Sita Sharma",
			"date_of_birth":   "2000-01-15",
			"nationality":     "Nepali",
			"passport_number": "PA1234567",
		},
		"academic_info": fiber.Map{
			"highest_qualification": "Bachelor",
			"institution":           "Tribhuvan University",
			"gpa":                   3.6,
			"graduation_year":       2023,
		},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var submitted struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	decodeBody(t, resp, &submitted)
	assert.Equal(t, "applied", submitted.Status)

	// admin moves it to under-review
	adminToken := env.seedAdmin(t)
	target := fmt.Sprintf("/api/admin/applications/%d/status", submitted.ID)
	resp, err = env.app.Test(jsonRequest(http.MethodPatch, target, adminToken, fiber.Map{
		"status":      "under-review",
		"admin_notes": "checking transcripts",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the applicant sees the new status
	resp, err = env.app.Test(jsonRequest(http.MethodGet, "/api/applications/my", registered.Token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mine []struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		Course string `json:"course"`
	}
	decodeBody(t, resp, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, "under-review", mine[0].Status)
	assert.Equal(t, "MBA", mine[0].Course)
}

func TestSubmitValidationErrorsOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "U", "email": "u@example.com", "password": "secret123", "phone": "1",
	}), -1)
	require.NoError(t, err)
	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &registered)

	resp, err = env.app.Test(jsonRequest(http.MethodPost, "/api/applications/", registered.Token, fiber.Map{}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Fields, "course")
	assert.Contains(t, body.Fields, "intake")
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	env := newTestEnv(t)

	// no token at all
	resp, err := env.app.Test(jsonRequest(http.MethodGet, "/api/admin/stats", "", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// a plain user is rejected even with a valid token
	resp, err = env.app.Test(jsonRequest(http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "U", "email": "u@example.com", "password": "secret123", "phone": "1",
	}), -1)
	require.NoError(t, err)
	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &registered)

	resp, err = env.app.Test(jsonRequest(http.MethodGet, "/api/admin/stats", registered.Token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// the seeded admin gets through
	adminToken := env.seedAdmin(t)
	resp, err = env.app.Test(jsonRequest(http.MethodGet, "/api/admin/stats", adminToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t)

	resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "admin@studyabroad.com",
		"password": "admin123",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			IsAdmin bool `json:"is_admin"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	assert.True(t, body.User.IsAdmin)

	resp, err = env.app.Test(jsonRequest(http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "admin@studyabroad.com",
		"password": "nope",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestScholarshipCalculatorOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.unis.ReplaceAll([]domain.University{
		{
			Name: "IIT Delhi", Country: "India", City: "New Delhi", Ranking: 1, IsActive: true,
			Scholarships: []domain.Scholarship{{Name: "Merit Scholarship", MinGPA: 3.0, Percentage: 50}},
		},
	}))

	token := env.seedAdmin(t)

	resp, err := env.app.Test(jsonRequest(http.MethodGet, "/api/universities/scholarships/calculate?gpa=3.5", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var matches []struct {
		Name         string `json:"name"`
		Scholarships []struct {
			Name string `json:"name"`
		} `json:"scholarships"`
	}
	decodeBody(t, resp, &matches)
	require.Len(t, matches, 1)
	assert.Equal(t, "IIT Delhi", matches[0].Name)

	resp, err = env.app.Test(jsonRequest(http.MethodGet, "/api/universities/scholarships/calculate?gpa=2.0", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &matches)
	assert.Empty(t, matches)
}

func TestStatusUpdateMissingApplicationOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedAdmin(t)

	resp, err := env.app.Test(jsonRequest(http.MethodPatch, "/api/admin/applications/9999/status", adminToken, fiber.Map{
		"status": "under-review",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMyApplicationsEmptyListOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Fresh User", "email": "fresh@example.com", "password": "secret123", "phone": "+9779800000000",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &registered)

	resp, err = env.app.Test(jsonRequest(http.MethodGet, "/api/applications/my", registered.Token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(bytes.TrimSpace(raw)))
}
