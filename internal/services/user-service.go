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
	"github.com/GoAbroadHQ/portal_service/internal/helper"
	"github.com/GoAbroadHQ/portal_service/internal/interfaces"
	"github.com/GoAbroadHQ/portal_service/internal/repository"
	"github.com/GoAbroadHQ/portal_service/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// RequiredProfileDocuments gates nothing; it only feeds the pending list.
var RequiredProfileDocuments = []string{"passport", "transcript", "certificate"}

type UserService interface {
	// Auth
	Register(input dto.RegisterRequest) (*domain.User, string, error)
	Login(input dto.UserLogin) (*domain.User, string, error)

	// Profile / KYC
	GetProfile(userID uint) (*domain.User, error)
	UpdateProfile(userID uint, input dto.UpdateProfileRequest) (*domain.User, error)
	UploadProfileDocument(ctx context.Context, userID uint, docType string, file dto.FileInput) (*domain.DocumentRecord, error)
	ProfileStatus(userID uint) (*dto.ProfileStatusResponse, error)
	PendingDocuments(userID uint) (*dto.PendingDocumentsResponse, error)

	// Admin
	IsAdmin(userID uint) (bool, error)
	ListUsers(limit, offset int) ([]dto.UserResponse, error)
	DeleteUser(ctx context.Context, userID, adminID uint) error
}

type userService struct {
	repo     repository.UserRepository
	appRepo  repository.ApplicationRepository
	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
	auth     helper.Auth
}

func NewUserService(
	repo repository.UserRepository,
	appRepo repository.ApplicationRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
	auth helper.Auth,
) UserService {
	return &userService{
		repo:     repo,
		appRepo:  appRepo,
		uploader: uploader,
		producer: producer,
		auth:     auth,
	}
}

// AUTH

func (u *userService) Register(input dto.RegisterRequest) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)

	if email == "" || strings.TrimSpace(input.Password) == "" || name == "" || phone == "" {
		return nil, "", errors.New("name, email, password and phone are required")
	}
	if len(input.Password) < 6 {
		return nil, "", errors.New("password must be at least 6 characters")
	}

	existing, err := u.repo.FindUserByEmail(email)
	if err == nil && existing != nil && existing.ID != 0 {
		return nil, "", errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.New("failed to hash password")
	}

	newUser := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Phone:        phone,
	}

	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		return nil, "", err
	}

	token, err := u.auth.GenerateToken(int(usr.ID), usr.Email, usr.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	if u.producer != nil {
		payload := fmt.Sprintf(`{"user_id":%d,"email":"%s","name":"%s"}`, usr.ID, usr.Email, usr.Name)
		_ = u.producer.PublishMessage([]byte(queue.EventUserRegistered), []byte(payload))
	}

	return usr, token, nil
}

func (u *userService) Login(input dto.UserLogin) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return nil, "", errors.New("invalid email or password")
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return nil, "", errors.New("invalid email or password")
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, "", errors.New("invalid email or password")
	}

	token, err := u.auth.GenerateToken(int(user.ID), user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// PROFILE / KYC

func (u *userService) GetProfile(userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, errors.New("invalid user_id")
	}
	return u.repo.FindUserById(userID)
}

func (u *userService) UpdateProfile(userID uint, input dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	p := &user.Profile

	if input.DateOfBirth != nil {
		p.DateOfBirth = strings.TrimSpace(*input.DateOfBirth)
	}
	if input.Nationality != nil {
		p.Nationality = strings.TrimSpace(*input.Nationality)
	}
	if input.PassportNumber != nil {
		p.PassportNumber = strings.TrimSpace(*input.PassportNumber)
	}
	if input.Address != nil {
		p.Address = strings.TrimSpace(*input.Address)
	}

	if ec := input.EmergencyContact; ec != nil {
		if ec.Name != nil {
			p.EmergencyContact.Name = strings.TrimSpace(*ec.Name)
		}
		if ec.Phone != nil {
			p.EmergencyContact.Phone = strings.TrimSpace(*ec.Phone)
		}
		if ec.Relationship != nil {
			p.EmergencyContact.Relationship = strings.TrimSpace(*ec.Relationship)
		}
	}

	if ac := input.Academic; ac != nil {
		if ac.HighestQualification != nil {
			p.Academic.HighestQualification = strings.TrimSpace(*ac.HighestQualification)
		}
		if ac.Institution != nil {
			p.Academic.Institution = strings.TrimSpace(*ac.Institution)
		}
		if ac.GPA != nil {
			p.Academic.GPA = ac.GPA
		}
		if ac.GraduationYear != nil {
			p.Academic.GraduationYear = *ac.GraduationYear
		}
		if ac.FieldOfStudy != nil {
			p.Academic.FieldOfStudy = strings.TrimSpace(*ac.FieldOfStudy)
		}
	}

	p.CheckProfileCompletion()

	if err := u.repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userService) UploadProfileDocument(ctx context.Context, userID uint, docType string, file dto.FileInput) (*domain.DocumentRecord, error) {
	docType = strings.TrimSpace(docType)
	if docType == "" {
		return nil, errors.New("document type is required")
	}
	if len(file.Data) == 0 {
		return nil, errors.New("no file uploaded")
	}
	if !utils.AllowedDocumentType(file.ContentType) {
		return nil, fmt.Errorf("invalid file type: %s", file.ContentType)
	}

	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	res, err := u.uploader.Upload(ctx, "kyc-documents", file.Filename, file.Data, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	record := domain.DocumentRecord{
		Source:     domain.DocumentSourceKYC,
		Type:       docType,
		Name:       file.Filename,
		URL:        res.URL,
		PublicID:   res.PublicID,
		Status:     domain.DocumentStatusUploaded,
		UploadedAt: time.Now(),
	}

	// re-uploading a type replaces the earlier record
	replaced := false
	for i := range user.Profile.Documents {
		if user.Profile.Documents[i].Type == docType {
			old := user.Profile.Documents[i]
			user.Profile.Documents[i] = record
			replaced = true

			if old.PublicID != "" && old.PublicID != record.PublicID {
				if err := u.uploader.Delete(ctx, old.PublicID); err != nil {
					log.Printf("delete replaced document %s: %v", old.PublicID, err)
				}
			}
			break
		}
	}
	if !replaced {
		user.Profile.Documents = append(user.Profile.Documents, record)
	}

	user.Profile.CheckProfileCompletion()

	if err := u.repo.SaveUser(user); err != nil {
		return nil, err
	}
	return &record, nil
}

func (u *userService) ProfileStatus(userID uint) (*dto.ProfileStatusResponse, error) {
	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	complete := user.Profile.CheckProfileCompletion()
	return &dto.ProfileStatusResponse{
		ProfileComplete: complete,
		Profile:         user.Profile,
	}, nil
}

func (u *userService) PendingDocuments(userID uint) (*dto.PendingDocumentsResponse, error) {
	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	uploaded := map[string]bool{}
	for _, d := range user.Profile.Documents {
		uploaded[d.Type] = true
	}

	pending := []string{}
	for _, t := range RequiredProfileDocuments {
		if !uploaded[t] {
			pending = append(pending, t)
		}
	}

	return &dto.PendingDocumentsResponse{
		Pending:  pending,
		Total:    len(RequiredProfileDocuments),
		Uploaded: len(user.Profile.Documents),
	}, nil
}

// ADMIN

func (u *userService) IsAdmin(userID uint) (bool, error) {
	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return false, errors.New("user not found")
	}
	return user.IsAdmin, nil
}

func (u *userService) ListUsers(limit, offset int) ([]dto.UserResponse, error) {
	users, err := u.repo.ListUsers(limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, usr := range users {
		out = append(out, dto.UserResponse{
			ID:      usr.ID,
			Name:    usr.Name,
			Email:   usr.Email,
			Phone:   usr.Phone,
			IsAdmin: usr.IsAdmin,
			Profile: usr.Profile,
		})
	}
	return out, nil
}

// DeleteUser removes the user, every application they own and, best effort,
// every remote blob those records reference. Blob deletion failures are
// logged and the cascade proceeds.
func (u *userService) DeleteUser(ctx context.Context, userID, adminID uint) error {
	if userID == adminID {
		return errors.New("admins cannot delete themselves")
	}

	user, err := u.repo.FindUserById(userID)
	if err != nil || user == nil {
		return errors.New("user not found")
	}

	apps, err := u.appRepo.ListByUser(userID)
	if err != nil {
		return err
	}

	for _, app := range apps {
		// kyc-sourced copies point at profile blobs, deleted once below
		u.deleteBlobs(ctx, app.Documents, true)
	}
	u.deleteBlobs(ctx, user.Profile.Documents, false)

	if err := u.appRepo.DeleteByUser(userID); err != nil {
		return err
	}
	return u.repo.DeleteUser(userID)
}

func (u *userService) deleteBlobs(ctx context.Context, docs []domain.DocumentRecord, skipKYCSourced bool) {
	if u.uploader == nil {
		return
	}
	for _, d := range docs {
		if d.PublicID == "" {
			continue
		}
		if skipKYCSourced && d.Source == domain.DocumentSourceKYC {
			continue
		}
		if err := u.uploader.Delete(ctx, d.PublicID); err != nil {
			log.Printf("delete blob %s: %v", d.PublicID, err)
		}
	}
}
