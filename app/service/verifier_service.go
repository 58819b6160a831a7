package service

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
	"github.com/trishhi-git/ayush-launchpad-app/app/repo"
	"github.com/trishhi-git/ayush-launchpad-app/helper"
)

// VerifierService is the admin-facing document review surface.
type VerifierService struct {
	docRepo      repo.DocumentRepository
	activityRepo repo.ActivityRepository
}

func NewVerifierService(docRepo repo.DocumentRepository, activityRepo repo.ActivityRepository) *VerifierService {
	return &VerifierService{docRepo: docRepo, activityRepo: activityRepo}
}

// POST /api/v1/admin/documents/:id/verify
func (s *VerifierService) Verify(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid document id",
		})
	}

	var req model.VerifyDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	// Status is validated before any write happens.
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}
	if !model.ValidVerificationStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid status. Must be one of: approved, rejected, under_review",
		})
	}

	doc, err := s.docRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Document not found",
		})
	}

	if !doc.HasFile() {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Document has no uploaded file to review",
		})
	}

	verifierID := c.Locals("user_id").(uuid.UUID)

	if err := s.docRepo.Verify(id, req.Status, req.Notes, verifierID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to verify document",
		})
	}

	msg := fmt.Sprintf("Document %q has been %s", doc.Name, req.Status)
	if err := s.activityRepo.Append(doc.ApplicationID, model.ActivityDocumentVerified, msg, &verifierID); err != nil {
		log.Printf("Failed to log verification for document %s: %v", id, err)
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: msg,
	})
}

// GET /api/v1/admin/documents/pending
func (s *VerifierService) Pending(c *fiber.Ctx) error {
	items, err := s.docRepo.FindPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to fetch pending documents",
		})
	}

	return c.JSON(model.SuccessResponse[[]model.PendingDocumentItem]{
		Success: true,
		Data:    items,
	})
}

// GET /api/v1/admin/verifications
func (s *VerifierService) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.docRepo.VerificationHistory(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to fetch verification history",
		})
	}

	return c.JSON(model.SuccessResponse[[]model.VerificationHistoryItem]{
		Success: true,
		Data:    items,
	})
}
