package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
	"github.com/trishhi-git/ayush-launchpad-app/app/repo"
	"github.com/trishhi-git/ayush-launchpad-app/helper"
)

type ApplicationService struct {
	appRepo      repo.ApplicationRepository
	docRepo      repo.DocumentRepository
	activityRepo repo.ActivityRepository
}

func NewApplicationService(appRepo repo.ApplicationRepository, docRepo repo.DocumentRepository, activityRepo repo.ActivityRepository) *ApplicationService {
	return &ApplicationService{
		appRepo:      appRepo,
		docRepo:      docRepo,
		activityRepo: activityRepo,
	}
}

// POST /api/v1/applications
func (s *ApplicationService) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	var req model.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	if _, err := s.appRepo.FindByUserID(userID); err == nil {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "An application already exists for this account",
		})
	}

	app, err := s.appRepo.Create(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	if err := s.activityRepo.Append(app.ID, model.ActivityApplicationSubmit, "Application created successfully", &userID); err != nil {
		log.Printf("Failed to log application creation for %s: %v", app.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.Application]{
		Success: true,
		Data:    app,
	})
}

// GET /api/v1/applications/me
//
// Returns the caller's application with its documents and activity feed.
// The document-derived status is recomputed on every fetch; a failed write
// back is logged and the previously stored value is served.
func (s *ApplicationService) GetMine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	app, err := s.appRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
				Success: false,
				Message: "No application found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	docs, err := s.docRepo.FindByApplicationID(app.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	if err := s.appRepo.SyncProgress(app, docs); err != nil {
		log.Printf("Failed to sync progress for application %s: %v", app.ID, err)
	}

	activities, err := s.activityRepo.FindByApplicationID(app.ID)
	if err != nil {
		log.Printf("Failed to load activities for application %s: %v", app.ID, err)
		activities = nil
	}

	return c.JSON(model.SuccessResponse[model.ApplicationOverviewResponse]{
		Success: true,
		Data: model.ApplicationOverviewResponse{
			Application: *app,
			Documents:   docs,
			Activities:  activities,
		},
	})
}

// GET /api/v1/applications/:id/activities
func (s *ApplicationService) GetActivities(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid application id",
		})
	}

	app, err := s.appRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Application not found",
		})
	}

	userID := c.Locals("user_id").(uuid.UUID)
	role := c.Locals("role").(string)
	if role != model.RoleAdmin && app.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "You are not authorised to view this application",
		})
	}

	activities, err := s.activityRepo.FindByApplicationID(app.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(model.SuccessResponse[[]model.ActivityLog]{
		Success: true,
		Data:    activities,
	})
}
