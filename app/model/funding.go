package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	FundingPending  = "pending"
	FundingAccepted = "accepted"
	FundingDeclined = "declined"
)

type FundingRequest struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID    uuid.UUID `gorm:"type:uuid;not null" json:"application_id"`
	InvestorID       uuid.UUID `gorm:"type:uuid;not null" json:"investor_id"`
	Amount           float64   `gorm:"not null" json:"amount"`
	EquityPercentage float64   `json:"equity_percentage,omitempty"`
	Message          string    `gorm:"type:text" json:"message,omitempty"`
	Terms            string    `gorm:"type:text" json:"terms,omitempty"`
	Status           string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Application Application `gorm:"foreignKey:ApplicationID" json:"-"`
	Investor    User        `gorm:"foreignKey:InvestorID" json:"-"`
}

type CreateFundingRequest struct {
	ApplicationID    string  `json:"application_id" validate:"required,uuid4"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	EquityPercentage float64 `json:"equity_percentage" validate:"omitempty,gt=0,lte=100"`
	Message          string  `json:"message"`
	Terms            string  `json:"terms"`
}

type RespondFundingRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

type FundingRequestItem struct {
	FundingRequest
	CompanyName  string `json:"company_name"`
	InvestorName string `json:"investor_name,omitempty"`
}

// StartupListing is what investors browse: approved applications that opted
// into fundraising.
type StartupListing struct {
	ID                  uuid.UUID `json:"id"`
	ApplicationID       string    `json:"application_id"`
	CompanyName         string    `json:"company_name"`
	AyushCategory       string    `json:"ayush_category"`
	Location            string    `json:"location"`
	FoundedYear         int       `json:"founded_year"`
	BusinessDescription string    `json:"business_description,omitempty"`
	FundingStage        string    `json:"funding_stage,omitempty"`
	FundingGoal         float64   `json:"funding_goal,omitempty"`
	FundingRaised       float64   `json:"funding_raised,omitempty"`
	EquityOffered       float64   `json:"equity_offered,omitempty"`
}
