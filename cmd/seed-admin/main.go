// One-shot seed: creates the default admin account if it does not exist.
package main

import (
	"log"

	"github.com/GoAbroadHQ/portal_service/config"
	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@studyabroad.com"
	adminPassword = "admin123"
)

func main() {
	cfg := config.LoadConfig()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	var existing domain.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("admin already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := domain.User{
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Phone:        "1234567890",
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("create admin: %v", err)
	}

	log.Println("admin created successfully")
}
