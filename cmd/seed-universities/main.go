// One-shot seed: wipes and reloads the university catalog.
package main

import (
	"log"

	"github.com/GoAbroadHQ/portal_service/config"
	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"github.com/GoAbroadHQ/portal_service/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var universities = []domain.University{
	{
		Name:        "Indian Institute of Technology Delhi",
		Country:     "India",
		City:        "New Delhi",
		Ranking:     1,
		Description: "Premier engineering institute in India",
		Website:     "https://iitd.ac.in",
		Courses: []domain.Course{
			{Name: "Computer Science Engineering", Duration: "4 years", TuitionFee: 200000, Requirements: domain.CourseRequirements{MinGPA: 3.8, EnglishTest: "IELTS", MinScore: 6.5}},
			{Name: "Mechanical Engineering", Duration: "4 years", TuitionFee: 200000, Requirements: domain.CourseRequirements{MinGPA: 3.7, EnglishTest: "IELTS", MinScore: 6.0}},
		},
		Scholarships: []domain.Scholarship{
			{Name: "Merit Scholarship", Amount: 100000, Percentage: 50, MinGPA: 3.8, Criteria: "Top 10% students"},
			{Name: "Nepal Student Scholarship", Amount: 80000, Percentage: 40, MinGPA: 3.5, Criteria: "Nepali nationals"},
		},
		AdmissionRequirements: domain.AdmissionRequirements{MinGPA: 3.5, EnglishTest: "IELTS", Documents: []string{"transcript", "passport", "SOP"}},
		IsActive:              true,
	},
	{
		Name:        "All India Institute of Medical Sciences",
		Country:     "India",
		City:        "New Delhi",
		Ranking:     1,
		Description: "Top medical college in India",
		Courses: []domain.Course{
			{Name: "MBBS", Duration: "5.5 years", TuitionFee: 150000, Requirements: domain.CourseRequirements{MinGPA: 3.9, EnglishTest: "IELTS", MinScore: 7.0}},
		},
		Scholarships: []domain.Scholarship{
			{Name: "Medical Merit Scholarship", Amount: 75000, Percentage: 50, MinGPA: 3.8, Criteria: "Medical students"},
		},
		AdmissionRequirements: domain.AdmissionRequirements{MinGPA: 3.8, EnglishTest: "IELTS"},
		IsActive:              true,
	},
	{
		Name:        "Indian Institute of Management Ahmedabad",
		Country:     "India",
		City:        "Ahmedabad",
		Ranking:     1,
		Description: "Premier management institute",
		Courses: []domain.Course{
			{Name: "MBA", Duration: "2 years", TuitionFee: 2500000, Requirements: domain.CourseRequirements{MinGPA: 3.6, EnglishTest: "IELTS", MinScore: 6.5}},
		},
		Scholarships: []domain.Scholarship{
			{Name: "Management Scholarship", Amount: 500000, Percentage: 20, MinGPA: 3.7, Criteria: "Outstanding academics"},
		},
		AdmissionRequirements: domain.AdmissionRequirements{MinGPA: 3.5, EnglishTest: "IELTS"},
		IsActive:              true,
	},
	{
		Name:        "Manipal Academy of Higher Education",
		Country:     "India",
		City:        "Manipal",
		Ranking:     15,
		Description: "Leading private university",
		Courses: []domain.Course{
			{Name: "Computer Science", Duration: "4 years", TuitionFee: 400000, Requirements: domain.CourseRequirements{MinGPA: 3.2, EnglishTest: "IELTS", MinScore: 6.0}},
			{Name: "Medicine", Duration: "5.5 years", TuitionFee: 1800000, Requirements: domain.CourseRequirements{MinGPA: 3.5, EnglishTest: "IELTS", MinScore: 6.5}},
		},
		Scholarships: []domain.Scholarship{
			{Name: "Nepal Scholarship", Amount: 200000, Percentage: 50, MinGPA: 3.0, Criteria: "Nepali students"},
			{Name: "Merit Scholarship", Amount: 150000, Percentage: 30, MinGPA: 3.5, Criteria: "Academic excellence"},
		},
		AdmissionRequirements: domain.AdmissionRequirements{MinGPA: 3.0, EnglishTest: "IELTS"},
		IsActive:              true,
	},
	{
		Name:        "Lovely Professional University",
		Country:     "India",
		City:        "Phagwara",
		Ranking:     25,
		Description: "Large private university with diverse programs",
		Courses: []domain.Course{
			{Name: "Engineering", Duration: "4 years", TuitionFee: 300000, Requirements: domain.CourseRequirements{MinGPA: 2.8, EnglishTest: "IELTS", MinScore: 5.5}},
			{Name: "Management", Duration: "3 years", TuitionFee: 250000, Requirements: domain.CourseRequirements{MinGPA: 2.5, EnglishTest: "IELTS", MinScore: 5.5}},
		},
		Scholarships: []domain.Scholarship{
			{Name: "International Scholarship", Amount: 150000, Percentage: 50, MinGPA: 2.8, Criteria: "International students"},
			{Name: "Sports Scholarship", Amount: 100000, Percentage: 40, MinGPA: 2.5, Criteria: "Sports achievements"},
		},
		AdmissionRequirements: domain.AdmissionRequirements{MinGPA: 2.5, EnglishTest: "IELTS"},
		IsActive:              true,
	},
}

func main() {
	cfg := config.LoadConfig()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}

	if err := db.AutoMigrate(&domain.University{}); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	repo := repository.NewUniversityRepository(db)
	if err := repo.ReplaceAll(universities); err != nil {
		log.Fatalf("seed universities: %v", err)
	}

	log.Printf("seeded %d universities", len(universities))
}
