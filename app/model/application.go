package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft       = "draft"
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under-review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

// TotalSteps is the number of stages shown on the applicant dashboard:
// profile, documents, submission, review, decision.
const TotalSteps = 5

type Application struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID string    `gorm:"size:30;unique;not null" json:"application_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`

	CompanyName         string `gorm:"size:255;not null" json:"company_name"`
	AyushCategory       string `gorm:"size:50;not null" json:"ayush_category"`
	FoundedYear         int    `gorm:"not null" json:"founded_year"`
	BusinessModel       string `gorm:"size:100;not null" json:"business_model"`
	Location            string `gorm:"size:255;not null" json:"location"`
	BusinessDescription string `gorm:"type:text" json:"business_description,omitempty"`
	TargetMarket        string `gorm:"size:255" json:"target_market,omitempty"`

	IsSeekingFunding bool     `gorm:"default:false" json:"is_seeking_funding"`
	FundingStage     string   `gorm:"size:50" json:"funding_stage,omitempty"`
	FundingGoal      float64  `json:"funding_goal,omitempty"`
	FundingRaised    float64  `json:"funding_raised,omitempty"`
	EquityOffered    float64  `json:"equity_offered,omitempty"`

	Status      string     `gorm:"size:20;not null;default:draft" json:"status"`
	CurrentStep int        `gorm:"not null;default:1" json:"current_step"`
	TotalSteps  int        `gorm:"not null;default:5" json:"total_steps"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Documents []Document `gorm:"foreignKey:ApplicationID" json:"documents,omitempty"`
}

// IsTerminal reports whether the status was set by an explicit admin decision.
// Terminal statuses are never overwritten by the document-derived progress.
func (a *Application) IsTerminal() bool {
	return a.Status == StatusApproved || a.Status == StatusRejected
}

type CreateApplicationRequest struct {
	CompanyName         string  `json:"company_name" validate:"required"`
	AyushCategory       string  `json:"ayush_category" validate:"required,oneof=ayurveda yoga unani siddha homeopathy"`
	FoundedYear         int     `json:"founded_year" validate:"required,min=1900,max=2100"`
	BusinessModel       string  `json:"business_model" validate:"required"`
	Location            string  `json:"location" validate:"required"`
	BusinessDescription string  `json:"business_description"`
	TargetMarket        string  `json:"target_market"`
	IsSeekingFunding    bool    `json:"is_seeking_funding"`
	FundingStage        string  `json:"funding_stage" validate:"omitempty,oneof=pre-seed seed series-a series-b growth"`
	FundingGoal         float64 `json:"funding_goal" validate:"omitempty,gt=0"`
	EquityOffered       float64 `json:"equity_offered" validate:"omitempty,gt=0,lte=100"`
}

type ApplicationOverviewResponse struct {
	Application Application   `json:"application"`
	Documents   []Document    `json:"documents"`
	Activities  []ActivityLog `json:"activities"`
}

type ApplicationAdminItem struct {
	Application
	FounderName  string `json:"founder_name"`
	FounderEmail string `json:"founder_email"`
}
