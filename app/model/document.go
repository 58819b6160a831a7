package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DocStatusRequired = "required"
	DocStatusUploaded = "uploaded"
)

const (
	VerificationPending     = "pending"
	VerificationUnderReview = "under_review"
	VerificationApproved    = "approved"
	VerificationRejected    = "rejected"
)

// RequiredDocuments is the fixed checklist created alongside every application.
var RequiredDocuments = []string{
	"Company Registration Certificate",
	"Founder ID Proof",
	"Business Plan",
	"Financial Statements",
}

// ValidVerificationStatus reports whether a reviewer decision value is one the
// portal accepts. Pending is not a reviewer decision; it is set by uploads.
func ValidVerificationStatus(status string) bool {
	switch status {
	case VerificationApproved, VerificationRejected, VerificationUnderReview:
		return true
	}
	return false
}

type Document struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null" json:"application_id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Status        string    `gorm:"size:20;not null;default:required" json:"status"`

	FilePath   string     `gorm:"size:500" json:"file_path,omitempty"`
	FileSize   int64      `json:"file_size,omitempty"`
	MimeType   string     `gorm:"size:100" json:"mime_type,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`

	VerificationStatus string     `gorm:"size:20" json:"verification_status,omitempty"`
	VerificationNotes  string     `gorm:"type:text" json:"verification_notes,omitempty"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	VerifiedBy         *uuid.UUID `gorm:"type:uuid" json:"verified_by,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// HasFile reports whether a file has been attached to this checklist slot.
func (d *Document) HasFile() bool {
	return d.FilePath != ""
}

type DocumentVerificationLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DocumentID uuid.UUID  `gorm:"type:uuid;not null" json:"document_id"`
	Status     string     `gorm:"size:20;not null" json:"status"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`
	VerifiedBy *uuid.UUID `gorm:"type:uuid" json:"verified_by,omitempty"`
	CreatedAt  time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

type VerifyDocumentRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected under_review"`
	Notes  string `json:"notes"`
}

type PendingDocumentItem struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	FilePath           string     `json:"file_path"`
	FileSize           int64      `json:"file_size"`
	MimeType           string     `json:"mime_type"`
	UploadedAt         *time.Time `json:"uploaded_at"`
	VerificationStatus string     `json:"verification_status"`
	ApplicationID      uuid.UUID  `json:"application_id"`
	ApplicationCode    string     `json:"application_code"`
	CompanyName        string     `json:"company_name"`
	AyushCategory      string     `json:"ayush_category"`
	FounderName        string     `json:"founder_name"`
	FounderEmail       string     `json:"founder_email"`
}

type VerificationHistoryItem struct {
	ID           uuid.UUID `json:"id"`
	DocumentID   uuid.UUID `json:"document_id"`
	DocumentName string    `json:"document_name"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CompanyName  string    `json:"company_name"`
	VerifierName string    `json:"verifier_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
