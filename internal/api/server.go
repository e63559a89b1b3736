package api

import (
	"log"

	"github.com/GoAbroadHQ/portal_service/config"
	"github.com/GoAbroadHQ/portal_service/infra/queue"
	"github.com/GoAbroadHQ/portal_service/internal/api/rest/handlers"
	"github.com/GoAbroadHQ/portal_service/internal/api/rest/middleware"
	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"github.com/GoAbroadHQ/portal_service/internal/helper"
	"github.com/GoAbroadHQ/portal_service/internal/interfaces"
	"github.com/GoAbroadHQ/portal_service/internal/repository"
	"github.com/GoAbroadHQ/portal_service/internal/services"
	"github.com/GoAbroadHQ/portal_service/pkg/cloudinary"
	"github.com/GoAbroadHQ/portal_service/pkg/localstore"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New(fiber.Config{
		BodyLimit: 64 * 1024 * 1024,
	})

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260901

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Application{},
		&domain.University{},
		&domain.Blog{},
		&domain.Notice{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var uploader interfaces.Uploader
	var localStore *localstore.LocalUploader

	switch cfg.StorageDriver {
	case "cloudinary":
		cld, err := cloudinary.New(cfg.CloudinaryUrl)
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		uploader = cloudinary.NewCloudinaryUploader(cld)
		log.Println("storage driver: cloudinary")
	default:
		localStore, err = localstore.NewLocalUploader(cfg.UploadDir)
		if err != nil {
			log.Fatalf("local storage init error: %v", err)
		}
		uploader = localStore
		log.Println("storage driver: local,", cfg.UploadDir)
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	universityRepo := repository.NewUniversityRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, appRepo, uploader, kafkaProducer, authHelper)
	appSvc := services.NewApplicationService(appRepo, userRepo, universityRepo, uploader, kafkaProducer)
	universitySvc := services.NewUniversityService(universityRepo)
	contentSvc := services.NewContentService(blogRepo, noticeRepo, userRepo, uploader)

	// ---------- Handlers ----------
	SetupRoutes(app, RouteDeps{
		Auth:         authHelper,
		UserSvc:      userSvc,
		AppSvc:       appSvc,
		UniSvc:       universitySvc,
		ContentSvc:   contentSvc,
		LocalStore:   localStore,
		LocalUploads: cfg.UploadDir,
	})

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

type RouteDeps struct {
	Auth         helper.Auth
	UserSvc      services.UserService
	AppSvc       services.ApplicationService
	UniSvc       services.UniversityService
	ContentSvc   services.ContentService
	LocalStore   *localstore.LocalUploader
	LocalUploads string
}

// SetupRoutes mounts every resource group. Split out of StartServer so the
// handler tests can run the exact production routing over app.Test.
func SetupRoutes(app *fiber.App, deps RouteDeps) {
	authHandler := handlers.NewAuthHandler(deps.UserSvc)
	profileHandler := handlers.NewProfileHandler(deps.UserSvc)
	appHandler := handlers.NewApplicationHandler(deps.AppSvc)
	adminHandler := handlers.NewAdminHandler(deps.UserSvc, deps.AppSvc)
	universityHandler := handlers.NewUniversityHandler(deps.UniSvc)
	blogHandler := handlers.NewBlogHandler(deps.ContentSvc)
	noticeHandler := handlers.NewNoticeHandler(deps.ContentSvc)
	documentHandler := handlers.NewDocumentHandler(deps.LocalStore)

	authMW := middleware.AuthMiddleware(deps.Auth)
	adminMW := middleware.AdminOnly(deps.UserSvc)

	api := app.Group("/api")

	// auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authMW, authHandler.Me)

	// applications
	apps := api.Group("/applications", authMW)
	apps.Post("/", appHandler.Submit)
	apps.Post("/submit", appHandler.SubmitMultipart)
	apps.Get("/my", appHandler.ListMine)
	apps.Post("/:id/documents", appHandler.AddDocuments)
	apps.Get("/:id", appHandler.Get)
	apps.Delete("/:id", appHandler.Delete)

	// admin
	admin := api.Group("/admin", authMW, adminMW)
	admin.Get("/applications", adminHandler.ListApplications)
	admin.Patch("/applications/:id/status", adminHandler.UpdateApplicationStatus)
	admin.Delete("/applications/:id", adminHandler.DeleteApplication)
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Delete("/users/:id", adminHandler.DeleteUser)

	// profile / KYC
	profile := api.Group("/profile", authMW)
	profile.Get("/", profileHandler.GetProfile)
	profile.Put("/", profileHandler.UpdateProfile)
	profile.Put("/kyc", profileHandler.UpdateProfile)
	profile.Post("/documents", profileHandler.UploadDocument)
	profile.Get("/status", profileHandler.Status)
	profile.Get("/pending-documents", profileHandler.PendingDocuments)

	// universities
	universities := api.Group("/universities")
	universities.Get("/", universityHandler.List)
	universities.Get("/scholarships/calculate", authMW, universityHandler.CalculateScholarships)
	universities.Get("/search/autocomplete", universityHandler.Autocomplete)
	universities.Post("/", authMW, adminMW, universityHandler.Create)
	universities.Put("/:id", authMW, adminMW, universityHandler.Update)
	universities.Get("/:id", universityHandler.Get)

	// blog
	blog := api.Group("/blog")
	blog.Get("/", blogHandler.ListPublished)
	blog.Post("/", authMW, adminMW, blogHandler.Create)
	blog.Get("/admin/all", authMW, adminMW, blogHandler.ListAll)
	blog.Put("/:id", authMW, adminMW, blogHandler.Update)
	blog.Delete("/:id", authMW, adminMW, blogHandler.Delete)
	blog.Get("/:id", blogHandler.Get)

	// notices
	notices := api.Group("/notices")
	notices.Get("/", authMW, noticeHandler.ListActive)
	notices.Post("/", authMW, adminMW, noticeHandler.Create)
	notices.Get("/admin/all", authMW, adminMW, noticeHandler.ListAll)
	notices.Put("/:id", authMW, adminMW, noticeHandler.Update)
	notices.Delete("/:id", authMW, adminMW, noticeHandler.Delete)

	// inline document serving; query token allowed for browser tabs
	documents := api.Group("/documents", middleware.AuthWithQueryToken(deps.Auth), adminMW)
	documents.Get("/*", documentHandler.Serve)

	// plain static serving for locally stored uploads
	if deps.LocalUploads != "" {
		app.Static("/uploads", deps.LocalUploads)
	}
}
