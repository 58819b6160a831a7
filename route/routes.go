package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
	"github.com/trishhi-git/ayush-launchpad-app/app/repo"
	"github.com/trishhi-git/ayush-launchpad-app/app/service"
	"github.com/trishhi-git/ayush-launchpad-app/middleware"
	"github.com/trishhi-git/ayush-launchpad-app/storage"
)

func SetupRoutes(app *fiber.App, pgDB *gorm.DB, mongoDB *mongo.Database, store storage.FileStorage) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	userRepo := repo.NewUserRepo(pgDB)
	appRepo := repo.NewApplicationRepo(pgDB)
	docRepo := repo.NewDocumentRepo(pgDB)
	activityRepo := repo.NewActivityRepo(mongoDB)
	fundingRepo := repo.NewFundingRepo(pgDB)
	otpRepo := repo.NewOTPRepo(pgDB)

	authService := service.NewAuthService(userRepo)
	aadhaarService := service.NewAadhaarService(otpRepo, userRepo)
	applicationService := service.NewApplicationService(appRepo, docRepo, activityRepo)
	documentService := service.NewDocumentService(docRepo, appRepo, activityRepo, store)
	verifierService := service.NewVerifierService(docRepo, activityRepo)
	adminService := service.NewAdminService(appRepo, activityRepo)
	fundingService := service.NewFundingService(fundingRepo, appRepo, activityRepo)
	certificateService := service.NewCertificateService(appRepo, userRepo)

	auth := v1.Group("/auth")
	auth.Post("/register", authService.Register)
	auth.Post("/login", authService.Login)
	auth.Post("/refresh", authService.Refresh)
	auth.Post("/logout", authService.Logout)

	protected := v1.Group("", middleware.AuthRequired())

	protected.Get("/auth/profile", authService.Profile)
	protected.Put("/auth/profile", authService.UpdateProfile)
	protected.Post("/auth/aadhaar/send-otp", aadhaarService.SendOTP)
	protected.Post("/auth/aadhaar/verify-otp", aadhaarService.VerifyOTP)

	applications := protected.Group("/applications")
	applications.Post("", middleware.RoleRequired(model.RoleStartup), applicationService.Create)
	applications.Get("/me", middleware.RoleRequired(model.RoleStartup), applicationService.GetMine)
	applications.Get("/:id/activities", applicationService.GetActivities)
	applications.Post("/:id/certificate", certificateService.Generate)

	documents := protected.Group("/documents", middleware.RoleRequired(model.RoleStartup))
	documents.Post("/:id/upload", documentService.Upload)
	documents.Get("/:id/file", documentService.FileURL)

	admin := protected.Group("/admin", middleware.RoleRequired(model.RoleAdmin))
	admin.Get("/applications", adminService.ListApplications)
	admin.Post("/applications/:id/approve", adminService.Approve)
	admin.Post("/applications/:id/reject", adminService.Reject)
	admin.Get("/documents/pending", verifierService.Pending)
	admin.Post("/documents/:id/verify", verifierService.Verify)
	admin.Get("/verifications", verifierService.History)

	funding := protected.Group("/funding")
	funding.Get("/startups", middleware.RoleRequired(model.RoleInvestor), fundingService.ListStartups)
	funding.Post("/requests", middleware.RoleRequired(model.RoleInvestor), fundingService.CreateRequest)
	funding.Get("/requests", fundingService.ListRequests)
	funding.Patch("/requests/:id", middleware.RoleRequired(model.RoleStartup), fundingService.Respond)
}
