package services

import (
	"context"
	"sort"
	"strings"

	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"github.com/GoAbroadHQ/portal_service/internal/interfaces"
	"github.com/GoAbroadHQ/portal_service/internal/repository"
)

// in-memory repositories so the services can be exercised without a database

type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return user, nil
}

func (f *fakeUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindUserById(userID uint) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) SaveUser(user *domain.User) error {
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) ListUsers(limit, offset int) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return []domain.User{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserRepo) DeleteUser(userID uint) error {
	delete(f.users, userID)
	return nil
}

type fakeAppRepo struct {
	apps   map[uint]*domain.Application
	nextID uint
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: map[uint]*domain.Application{}, nextID: 1}
}

func (f *fakeAppRepo) Create(app *domain.Application) error {
	app.ID = f.nextID
	f.nextID++
	stored := *app
	f.apps[app.ID] = &stored
	return nil
}

func (f *fakeAppRepo) Save(app *domain.Application) error {
	stored := *app
	f.apps[app.ID] = &stored
	return nil
}

func (f *fakeAppRepo) FindByID(id uint) (*domain.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppRepo) FindOwned(id, userID uint) (*domain.Application, error) {
	a, ok := f.apps[id]
	if !ok || a.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppRepo) ListByUser(userID uint) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range f.apps {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeAppRepo) ListAll(limit, offset int) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range f.apps {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if offset >= len(out) {
		return []domain.Application{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAppRepo) UpdateStatus(id uint, from, to domain.ApplicationStatus, adminNotes string) error {
	a, ok := f.apps[id]
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

func (f *fakeAppRepo) CountByStatus(status domain.ApplicationStatus) (int64, error) {
	var n int64
	for _, a := range f.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeAppRepo) Count() (int64, error) {
	return int64(len(f.apps)), nil
}

func (f *fakeAppRepo) Delete(id uint) error {
	delete(f.apps, id)
	return nil
}

func (f *fakeAppRepo) DeleteByUser(userID uint) error {
	for id, a := range f.apps {
		if a.UserID == userID {
			delete(f.apps, id)
		}
	}
	return nil
}

type fakeUniversityRepo struct {
	unis   map[uint]*domain.University
	nextID uint

	lastLimit  int
	lastOffset int
}

func newFakeUniversityRepo() *fakeUniversityRepo {
	return &fakeUniversityRepo{unis: map[uint]*domain.University{}, nextID: 1}
}

func (f *fakeUniversityRepo) FindByID(id uint) (*domain.University, error) {
	u, ok := f.unis[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUniversityRepo) sorted() []domain.University {
	var out []domain.University
	for _, u := range f.unis {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ranking < out[j].Ranking })
	return out
}

func (f *fakeUniversityRepo) List(country, search string, limit, offset int) ([]domain.University, int64, error) {
	f.lastLimit = limit
	f.lastOffset = offset

	out := []domain.University{}
	for _, u := range f.sorted() {
		if !u.IsActive {
			continue
		}
		if country != "" && !strings.Contains(strings.ToLower(u.Country), strings.ToLower(country)) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, u)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return []domain.University{}, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeUniversityRepo) ListActive() ([]domain.University, error) {
	out := []domain.University{}
	for _, u := range f.sorted() {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUniversityRepo) SearchByName(q string, limit int) ([]domain.University, error) {
	out := []domain.University{}
	for _, u := range f.sorted() {
		if u.IsActive && strings.Contains(strings.ToLower(u.Name), strings.ToLower(q)) {
			out = append(out, u)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeUniversityRepo) Add(university *domain.University) error {
	university.ID = f.nextID
	f.nextID++
	stored := *university
	f.unis[university.ID] = &stored
	return nil
}

func (f *fakeUniversityRepo) Save(university *domain.University) error {
	stored := *university
	f.unis[university.ID] = &stored
	return nil
}

func (f *fakeUniversityRepo) ReplaceAll(universities []domain.University) error {
	f.unis = map[uint]*domain.University{}
	for i := range universities {
		f.Add(&universities[i])
	}
	return nil
}

type fakeBlogRepo struct {
	blogs  map[uint]*domain.Blog
	nextID uint
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[uint]*domain.Blog{}, nextID: 1}
}

func (f *fakeBlogRepo) Create(blog *domain.Blog) error {
	blog.ID = f.nextID
	f.nextID++
	stored := *blog
	f.blogs[blog.ID] = &stored
	return nil
}

func (f *fakeBlogRepo) Save(blog *domain.Blog) error {
	stored := *blog
	f.blogs[blog.ID] = &stored
	return nil
}

func (f *fakeBlogRepo) FindByID(id uint) (*domain.Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBlogRepo) ListPublished(category string, limit, offset int) ([]domain.Blog, int64, error) {
	out := []domain.Blog{}
	for _, b := range f.blogs {
		if !b.IsPublished {
			continue
		}
		if category != "" && string(b.Category) != category {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	total := int64(len(out))
	if offset >= len(out) {
		return []domain.Blog{}, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeBlogRepo) ListAll() ([]domain.Blog, error) {
	out := []domain.Blog{}
	for _, b := range f.blogs {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeBlogRepo) IncrementViews(id uint) error {
	b, ok := f.blogs[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Views++
	return nil
}

func (f *fakeBlogRepo) Delete(id uint) error {
	delete(f.blogs, id)
	return nil
}

type fakeNoticeRepo struct {
	notices map[uint]*domain.Notice
	nextID  uint
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{notices: map[uint]*domain.Notice{}, nextID: 1}
}

func (f *fakeNoticeRepo) Create(notice *domain.Notice) error {
	notice.ID = f.nextID
	f.nextID++
	stored := *notice
	f.notices[notice.ID] = &stored
	return nil
}

func (f *fakeNoticeRepo) Save(notice *domain.Notice) error {
	stored := *notice
	f.notices[notice.ID] = &stored
	return nil
}

func (f *fakeNoticeRepo) FindByID(id uint) (*domain.Notice, error) {
	n, ok := f.notices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNoticeRepo) ListActive() ([]domain.Notice, error) {
	out := []domain.Notice{}
	for _, n := range f.notices {
		if n.IsActive {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeNoticeRepo) ListAll() ([]domain.Notice, error) {
	out := []domain.Notice{}
	for _, n := range f.notices {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeNoticeRepo) Delete(id uint) error {
	delete(f.notices, id)
	return nil
}

// storage and broker fakes

type uploadedBlob struct {
	Folder      string
	Filename    string
	ContentType string
	Size        int
}

type fakeUploader struct {
	uploads []uploadedBlob
	deleted []string
}

func (f *fakeUploader) Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (*interfaces.UploadResult, error) {
	f.uploads = append(f.uploads, uploadedBlob{
		Folder:      folder,
		Filename:    filename,
		ContentType: contentType,
		Size:        len(data),
	})
	id := folder + "/" + filename
	return &interfaces.UploadResult{URL: "/uploads/" + id, PublicID: id}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

type publishedEvent struct {
	Key   string
	Value string
}

type fakeProducer struct {
	events []publishedEvent
}

func (f *fakeProducer) PublishMessage(key, value []byte) error {
	f.events = append(f.events, publishedEvent{Key: string(key), Value: string(value)})
	return nil
}

func (f *fakeProducer) keys() []string {
	var out []string
	for _, e := range f.events {
		out = append(out, e.Key)
	}
	return out
}
