package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/GoAbroadHQ/portal_service/infra/queue"
	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/internal/interfaces"
	"github.com/GoAbroadHQ/portal_service/internal/repository"
	"github.com/GoAbroadHQ/portal_service/pkg/utils"
)

// MultipartDocumentFields maps the named multipart form fields of the full
// submission endpoint to recorded document types.
var MultipartDocumentFields = map[string]string{
	"transcripts": "transcripts",
	"passport":    "passport",
	"citizenship": "citizenship",
	"englishTest": "englishTest",
	"sop":         "sop",
	"cv":          "cv",
}

// FieldError reports validation failures field by field so the handler can
// answer 400 with every missing name at once.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

type ApplicationService interface {
	Submit(ctx context.Context, userID uint, input dto.ApplicationSubmitRequest, files []dto.FileInput) (*domain.Application, error)
	AddDocuments(ctx context.Context, userID, appID uint, files []dto.FileInput) (*domain.Application, error)
	ListMine(userID uint) ([]domain.Application, error)
	GetOwned(userID, appID uint) (*domain.Application, error)
	Delete(ctx context.Context, appID uint, userID uint, asAdmin bool) error

	// admin
	ListAll(limit, offset int) ([]dto.AdminApplicationResponse, error)
	UpdateStatus(appID uint, input dto.StatusUpdateRequest) (*domain.Application, error)
	Stats() (*dto.StatsResponse, error)
}

type applicationService struct {
	repo           repository.ApplicationRepository
	userRepo       repository.UserRepository
	universityRepo repository.UniversityRepository
	uploader       interfaces.Uploader
	producer       interfaces.ProducerHandler
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	universityRepo repository.UniversityRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
) ApplicationService {
	return &applicationService{
		repo:           repo,
		userRepo:       userRepo,
		universityRepo: universityRepo,
		uploader:       uploader,
		producer:       producer,
	}
}

func validateSubmission(input dto.ApplicationSubmitRequest) error {
	var missing []string

	if strings.TrimSpace(input.Course) == "" {
		missing = append(missing, "course")
	}
	if strings.TrimSpace(input.Intake) == "" {
		missing = append(missing, "intake")
	}
	if strings.TrimSpace(input.PersonalInfo.FullName) == "" {
		missing = append(missing, "personal_info.full_name")
	}
	if strings.TrimSpace(input.PersonalInfo.DateOfBirth) == "" {
		missing = append(missing, "personal_info.date_of_birth")
	}
	if strings.TrimSpace(input.PersonalInfo.Nationality) == "" {
		missing = append(missing, "personal_info.nationality")
	}
	if strings.TrimSpace(input.PersonalInfo.PassportNumber) == "" {
		missing = append(missing, "personal_info.passport_number")
	}
	if strings.TrimSpace(input.AcademicInfo.HighestQualification) == "" {
		missing = append(missing, "academic_info.highest_qualification")
	}
	if strings.TrimSpace(input.AcademicInfo.Institution) == "" {
		missing = append(missing, "academic_info.institution")
	}
	if input.AcademicInfo.GPA <= 0 {
		missing = append(missing, "academic_info.gpa")
	}
	if input.AcademicInfo.GraduationYear == 0 {
		missing = append(missing, "academic_info.graduation_year")
	}

	if len(missing) > 0 {
		return &FieldError{Fields: missing}
	}
	return nil
}

// Submit creates an application. The caller's current KYC document list is
// copied into the new record at this moment; later profile edits never
// reach back into it. Freshly uploaded files, if any, are stored and
// appended with source "upload".
func (a *applicationService) Submit(ctx context.Context, userID uint, input dto.ApplicationSubmitRequest, files []dto.FileInput) (*domain.Application, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	user, err := a.userRepo.FindUserById(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	if input.UniversityID != nil {
		if _, err := a.universityRepo.FindByID(*input.UniversityID); err != nil {
			return nil, errors.New("university not found")
		}
	} else if strings.TrimSpace(input.CustomUniversity) == "" {
		return nil, &FieldError{Fields: []string{"university_id or custom_university"}}
	}

	app := &domain.Application{
		UserID:           userID,
		UniversityID:     input.UniversityID,
		CustomUniversity: strings.TrimSpace(input.CustomUniversity),
		Course:           strings.TrimSpace(input.Course),
		Intake:           strings.TrimSpace(input.Intake),
		PersonalInfo:     input.PersonalInfo,
		AcademicInfo:     input.AcademicInfo,
		Status:           domain.StatusApplied,
	}

	// snapshot of the KYC documents as they stand right now
	for _, d := range user.Profile.Documents {
		copied := d
		copied.Source = domain.DocumentSourceKYC
		app.Documents = append(app.Documents, copied)
	}

	uploaded, err := a.storeFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	app.Documents = append(app.Documents, uploaded...)

	if err := a.repo.Create(app); err != nil {
		return nil, err
	}

	if a.producer != nil {
		payload := fmt.Sprintf(`{"application_id":%d,"user_id":%d,"course":"%s"}`, app.ID, userID, app.Course)
		_ = a.producer.PublishMessage([]byte(queue.EventApplicationSubmitted), []byte(payload))
	}

	return app, nil
}

func (a *applicationService) AddDocuments(ctx context.Context, userID, appID uint, files []dto.FileInput) (*domain.Application, error) {
	if len(files) == 0 {
		return nil, errors.New("no files uploaded")
	}

	app, err := a.repo.FindOwned(appID, userID)
	if err != nil {
		return nil, errors.New("application not found")
	}

	uploaded, err := a.storeFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	app.Documents = append(app.Documents, uploaded...)
	if err := a.repo.Save(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *applicationService) storeFiles(ctx context.Context, files []dto.FileInput) ([]domain.DocumentRecord, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if a.uploader == nil {
		return nil, errors.New("storage backend not configured")
	}

	var out []domain.DocumentRecord
	for _, f := range files {
		if !utils.AllowedDocumentType(f.ContentType) {
			return nil, fmt.Errorf("invalid file type: %s", f.ContentType)
		}

		res, err := a.uploader.Upload(ctx, "study-abroad-docs", f.Filename, f.Data, f.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload failed: %w", err)
		}

		out = append(out, domain.DocumentRecord{
			Source:     domain.DocumentSourceUpload,
			Type:       f.DocType,
			Name:       f.Filename,
			URL:        res.URL,
			PublicID:   res.PublicID,
			Status:     domain.DocumentStatusUploaded,
			UploadedAt: time.Now(),
		})
	}
	return out, nil
}

func (a *applicationService) ListMine(userID uint) ([]domain.Application, error) {
	return a.repo.ListByUser(userID)
}

func (a *applicationService) GetOwned(userID, appID uint) (*domain.Application, error) {
	app, err := a.repo.FindOwned(appID, userID)
	if err != nil {
		return nil, errors.New("application not found")
	}
	return app, nil
}

func (a *applicationService) Delete(ctx context.Context, appID uint, userID uint, asAdmin bool) error {
	var app *domain.Application
	var err error

	if asAdmin {
		app, err = a.repo.FindByID(appID)
	} else {
		app, err = a.repo.FindOwned(appID, userID)
	}
	if err != nil {
		return errors.New("application not found")
	}

	// best-effort blob cleanup; kyc-sourced copies stay with the profile
	if a.uploader != nil {
		for _, d := range app.Documents {
			if d.PublicID == "" || d.Source == domain.DocumentSourceKYC {
				continue
			}
			if err := a.uploader.Delete(ctx, d.PublicID); err != nil {
				log.Printf("delete blob %s: %v", d.PublicID, err)
			}
		}
	}

	return a.repo.Delete(app.ID)
}

// ADMIN

func (a *applicationService) ListAll(limit, offset int) ([]dto.AdminApplicationResponse, error) {
	apps, err := a.repo.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp := dto.AdminApplicationResponse{Application: app}

		if user, err := a.userRepo.FindUserById(app.UserID); err == nil && user != nil {
			resp.ApplicantName = user.Name
			resp.ApplicantEmail = user.Email
		}
		if app.UniversityID != nil {
			if uni, err := a.universityRepo.FindByID(*app.UniversityID); err == nil && uni != nil {
				resp.UniversityName = uni.Name
			}
		} else {
			resp.UniversityName = app.CustomUniversity
		}

		out = append(out, resp)
	}
	return out, nil
}

func (a *applicationService) UpdateStatus(appID uint, input dto.StatusUpdateRequest) (*domain.Application, error) {
	next := domain.ApplicationStatus(strings.TrimSpace(input.Status))
	if !domain.ValidStatus(next) {
		return nil, fmt.Errorf("invalid status: %s", input.Status)
	}

	app, err := a.repo.FindByID(appID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("application not found: %w", err)
		}
		return nil, err
	}

	if !domain.CanTransition(app.Status, next) {
		return nil, fmt.Errorf("cannot move application from %s to %s", app.Status, next)
	}

	notes := input.AdminNotes
	if notes == "" {
		notes = app.AdminNotes
	}

	if err := a.repo.UpdateStatus(appID, app.Status, next, notes); err != nil {
		return nil, err
	}

	app.Status = next
	app.AdminNotes = notes

	if a.producer != nil {
		payload := fmt.Sprintf(`{"application_id":%d,"user_id":%d,"status":"%s"}`, app.ID, app.UserID, next)
		_ = a.producer.PublishMessage([]byte(queue.EventApplicationStatusChanged), []byte(payload))
	}

	return app, nil
}

func (a *applicationService) Stats() (*dto.StatsResponse, error) {
	total, err := a.repo.Count()
	if err != nil {
		return nil, err
	}
	pending, err := a.repo.CountByStatus(domain.StatusApplied)
	if err != nil {
		return nil, err
	}
	approved, err := a.repo.CountByStatus(domain.StatusOfferReceived)
	if err != nil {
		return nil, err
	}
	rejected, err := a.repo.CountByStatus(domain.StatusRejected)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalApplications:    total,
		PendingApplications:  pending,
		ApprovedApplications: approved,
		RejectedApplications: rejected,
	}, nil
}
