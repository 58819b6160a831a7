package service

import (
	"fmt"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
	"github.com/trishhi-git/ayush-launchpad-app/app/repo"
	"github.com/trishhi-git/ayush-launchpad-app/storage"
)

type DocumentService struct {
	docRepo      repo.DocumentRepository
	appRepo      repo.ApplicationRepository
	activityRepo repo.ActivityRepository
	store        storage.FileStorage
}

func NewDocumentService(docRepo repo.DocumentRepository, appRepo repo.ApplicationRepository, activityRepo repo.ActivityRepository, store storage.FileStorage) *DocumentService {
	return &DocumentService{
		docRepo:      docRepo,
		appRepo:      appRepo,
		activityRepo: activityRepo,
		store:        store,
	}
}

func (s *DocumentService) ownedDocument(c *fiber.Ctx) (*model.Document, *model.Application, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, nil, c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid document id",
		})
	}

	doc, err := s.docRepo.FindByID(id)
	if err != nil {
		return nil, nil, c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Document not found",
		})
	}

	app, err := s.appRepo.FindByID(doc.ApplicationID)
	if err != nil {
		return nil, nil, c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Application not found",
		})
	}

	userID := c.Locals("user_id").(uuid.UUID)
	if app.UserID != userID {
		return nil, nil, c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "You are not authorised to access this document",
		})
	}

	return doc, app, nil
}

// POST /api/v1/documents/:id/upload
func (s *DocumentService) Upload(c *fiber.Ctx) error {
	doc, app, errResp := s.ownedDocument(c)
	if doc == nil {
		return errResp
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "File required",
		})
	}

	contentType := fileContentType(file)

	// Size and MIME type are checked before a single byte reaches storage.
	if err := storage.ValidateUpload(file.Size, contentType); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to read uploaded file",
		})
	}
	defer src.Close()

	userID := c.Locals("user_id").(uuid.UUID)
	key := storage.ObjectKey(userID, doc.ID, file.Filename)

	if err := s.store.Save(c.Context(), key, src, file.Size, contentType); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to store file",
		})
	}

	if err := s.docRepo.AttachFile(doc.ID, key, file.Size, contentType); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to update document record",
		})
	}

	msg := fmt.Sprintf("Document %q uploaded successfully", file.Filename)
	if err := s.activityRepo.Append(app.ID, model.ActivityDocumentUpload, msg, &userID); err != nil {
		log.Printf("Failed to log upload for document %s: %v", doc.ID, err)
	}

	updated, err := s.docRepo.FindByID(doc.ID)
	if err != nil {
		updated = doc
	}

	return c.JSON(model.SuccessResponse[*model.Document]{
		Success: true,
		Message: "Document uploaded successfully",
		Data:    updated,
	})
}

// GET /api/v1/documents/:id/file
func (s *DocumentService) FileURL(c *fiber.Ctx) error {
	doc, _, errResp := s.ownedDocument(c)
	if doc == nil {
		return errResp
	}

	if !doc.HasFile() {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "No file has been uploaded for this document",
		})
	}

	return c.JSON(model.SuccessResponse[string]{
		Success: true,
		Data:    s.store.URL(doc.FilePath),
	})
}

func fileContentType(file *multipart.FileHeader) string {
	ct := file.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ct
}
