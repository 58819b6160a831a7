package service

import (
	"errors"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
	"github.com/trishhi-git/ayush-launchpad-app/app/repo"
)

// AdminService handles the terminal application decisions. Approval is gated
// server-side on the full checklist being approved; the database write is
// refused otherwise, regardless of what any client claims.
type AdminService struct {
	appRepo      repo.ApplicationRepository
	activityRepo repo.ActivityRepository
}

func NewAdminService(appRepo repo.ApplicationRepository, activityRepo repo.ActivityRepository) *AdminService {
	return &AdminService{appRepo: appRepo, activityRepo: activityRepo}
}

// GET /api/v1/admin/applications
func (s *AdminService) ListApplications(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.appRepo.FindAllForAdmin(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load applications",
			Error:   err.Error(),
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return c.JSON(model.SuccessResponse[model.PaginationData[model.ApplicationAdminItem]]{
		Success: true,
		Data: model.PaginationData[model.ApplicationAdminItem]{
			Items: items,
			Meta: model.MetaInfo{
				Page:  page,
				Limit: limit,
				Total: total,
				Pages: totalPages,
			},
		},
	})
}

// POST /api/v1/admin/applications/:id/approve
func (s *AdminService) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid application id",
		})
	}

	reviewerID := c.Locals("user_id").(uuid.UUID)

	if err := s.appRepo.Approve(id, reviewerID); err != nil {
		switch {
		case errors.Is(err, repo.ErrApprovalGate):
			return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		case errors.Is(err, repo.ErrTerminalStatus):
			return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Application not found",
		})
	}

	if err := s.activityRepo.Append(id, model.ActivityApplicationApproved, "Application approved by admin", &reviewerID); err != nil {
		log.Printf("Failed to log approval for application %s: %v", id, err)
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Application approved; certificate can now be generated",
	})
}

// POST /api/v1/admin/applications/:id/reject
func (s *AdminService) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid application id",
		})
	}

	reviewerID := c.Locals("user_id").(uuid.UUID)

	if err := s.appRepo.Reject(id, reviewerID); err != nil {
		if errors.Is(err, repo.ErrTerminalStatus) {
			return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Application not found",
		})
	}

	if err := s.activityRepo.Append(id, model.ActivityApplicationRejected, "Application rejected by admin", &reviewerID); err != nil {
		log.Printf("Failed to log rejection for application %s: %v", id, err)
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Application rejected",
	})
}
