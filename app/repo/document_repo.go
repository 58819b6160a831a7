package repo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
)

type DocumentRepository interface {
	FindByID(id uuid.UUID) (*model.Document, error)
	FindByApplicationID(applicationID uuid.UUID) ([]model.Document, error)
	AttachFile(id uuid.UUID, filePath string, fileSize int64, mimeType string) error
	Verify(id uuid.UUID, status, notes string, verifierID uuid.UUID) error
	FindPending() ([]model.PendingDocumentItem, error)
	VerificationHistory(limit, offset int) ([]model.VerificationHistoryItem, error)
}

type DocumentRepo struct {
	DB *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DocumentRepo {
	return &DocumentRepo{DB: db}
}

func (r *DocumentRepo) FindByID(id uuid.UUID) (*model.Document, error) {
	var doc model.Document
	err := r.DB.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepo) FindByApplicationID(applicationID uuid.UUID) ([]model.Document, error) {
	var docs []model.Document
	err := r.DB.Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}

// AttachFile records an upload. Re-uploading after a rejection resets the
// verification state to pending and clears the previous decision; the history
// of decisions survives in document_verification_logs.
func (r *DocumentRepo) AttachFile(id uuid.UUID, filePath string, fileSize int64, mimeType string) error {
	now := time.Now()
	return r.DB.Model(&model.Document{}).Where("id = ?", id).Updates(map[string]interface{}{
		"file_path":           filePath,
		"file_size":           fileSize,
		"mime_type":           mimeType,
		"status":              model.DocStatusUploaded,
		"uploaded_at":         now,
		"verification_status": model.VerificationPending,
		"verification_notes":  "",
		"verified_at":         nil,
		"verified_by":         nil,
		"updated_at":          now,
	}).Error
}

// Verify records a reviewer decision: the document row always reflects the
// latest decision, while the append-only log keeps the full history. Both
// writes happen in one transaction.
func (r *DocumentRepo) Verify(id uuid.UUID, status, notes string, verifierID uuid.UUID) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		logEntry := model.DocumentVerificationLog{
			DocumentID: id,
			Status:     status,
			Notes:      notes,
			VerifiedBy: &verifierID,
		}
		if err := tx.Create(&logEntry).Error; err != nil {
			return err
		}

		return tx.Model(&model.Document{}).Where("id = ?", id).Updates(map[string]interface{}{
			"verification_status": status,
			"verification_notes":  notes,
			"verified_at":         now,
			"verified_by":         verifierID,
			"updated_at":          now,
		}).Error
	})
}

func (r *DocumentRepo) FindPending() ([]model.PendingDocumentItem, error) {
	var items []model.PendingDocumentItem
	err := r.DB.Raw(`
		SELECT d.id, d.name, d.file_path, d.file_size, d.mime_type, d.uploaded_at, d.verification_status,
		       a.id AS application_id, a.application_id AS application_code, a.company_name, a.ayush_category,
		       u.full_name AS founder_name, u.email AS founder_email
		FROM documents d
		JOIN applications a ON a.id = d.application_id
		JOIN users u ON u.id = a.user_id
		WHERE d.verification_status IN ? AND d.file_path <> ''
		ORDER BY d.uploaded_at ASC`,
		[]string{model.VerificationPending, model.VerificationUnderReview},
	).Scan(&items).Error
	return items, err
}

func (r *DocumentRepo) VerificationHistory(limit, offset int) ([]model.VerificationHistoryItem, error) {
	var items []model.VerificationHistoryItem
	err := r.DB.Raw(`
		SELECT l.id, l.document_id, d.name AS document_name, l.status, l.notes, l.created_at,
		       a.company_name, u.full_name AS verifier_name
		FROM document_verification_logs l
		JOIN documents d ON d.id = l.document_id
		JOIN applications a ON a.id = d.application_id
		LEFT JOIN users u ON u.id = l.verified_by
		ORDER BY l.created_at DESC
		LIMIT ? OFFSET ?`,
		limit, offset,
	).Scan(&items).Error
	return items, err
}
