package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
	"github.com/trishhi-git/ayush-launchpad-app/app/repo"
	"github.com/trishhi-git/ayush-launchpad-app/helper"
)

type FundingService struct {
	fundingRepo  repo.FundingRepository
	appRepo      repo.ApplicationRepository
	activityRepo repo.ActivityRepository
}

func NewFundingService(fundingRepo repo.FundingRepository, appRepo repo.ApplicationRepository, activityRepo repo.ActivityRepository) *FundingService {
	return &FundingService{
		fundingRepo:  fundingRepo,
		appRepo:      appRepo,
		activityRepo: activityRepo,
	}
}

// GET /api/v1/funding/startups
func (s *FundingService) ListStartups(c *fiber.Ctx) error {
	listings, err := s.appRepo.FindApprovedSeekingFunding()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load startups",
		})
	}

	return c.JSON(model.SuccessResponse[[]model.StartupListing]{
		Success: true,
		Data:    listings,
	})
}

// POST /api/v1/funding/requests
func (s *FundingService) CreateRequest(c *fiber.Ctx) error {
	investorID := c.Locals("user_id").(uuid.UUID)

	var req model.CreateFundingRequest
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

	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid application id",
		})
	}

	app, err := s.appRepo.FindByID(appID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Application not found",
		})
	}

	// Only registered (approved) startups can receive investment offers.
	if app.Status != model.StatusApproved {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Funding requests can only target approved startups",
		})
	}

	fr := model.FundingRequest{
		ApplicationID:    appID,
		InvestorID:       investorID,
		Amount:           req.Amount,
		EquityPercentage: req.EquityPercentage,
		Message:          req.Message,
		Terms:            req.Terms,
		Status:           model.FundingPending,
	}

	if err := s.fundingRepo.Create(&fr); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to create funding request",
		})
	}

	if err := s.activityRepo.Append(appID, model.ActivityFundingRequest, "New investment offer received", &investorID); err != nil {
		log.Printf("Failed to log funding request for application %s: %v", appID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.FundingRequest]{
		Success: true,
		Data:    &fr,
	})
}

// GET /api/v1/funding/requests
//
// Investors see the offers they made; startups see the offers made against
// their application.
func (s *FundingService) ListRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)
	role := c.Locals("role").(string)

	var items []model.FundingRequestItem
	var err error

	switch role {
	case model.RoleInvestor:
		items, err = s.fundingRepo.FindByInvestorID(userID)
	case model.RoleStartup:
		app, appErr := s.appRepo.FindByUserID(userID)
		if appErr != nil {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
				Success: false,
				Message: "No application found",
			})
		}
		items, err = s.fundingRepo.FindByApplicationID(app.ID)
	default:
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "Access denied",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load funding requests",
		})
	}

	return c.JSON(model.SuccessResponse[[]model.FundingRequestItem]{
		Success: true,
		Data:    items,
	})
}

// PATCH /api/v1/funding/requests/:id
func (s *FundingService) Respond(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid funding request id",
		})
	}

	var req model.RespondFundingRequest
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

	fr, err := s.fundingRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Funding request not found",
		})
	}

	app, err := s.appRepo.FindByID(fr.ApplicationID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Application not found",
		})
	}

	userID := c.Locals("user_id").(uuid.UUID)
	if app.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "You are not authorised to respond to this offer",
		})
	}

	if fr.Status != model.FundingPending {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "This offer has already been answered",
		})
	}

	if err := s.fundingRepo.UpdateStatus(id, req.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to update funding request",
		})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Offer " + req.Status,
	})
}
