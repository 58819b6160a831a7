package model

import (
	"time"

	"github.com/google/uuid"
)

// AadhaarOTP backs the demo Aadhaar sign-in flow. There is no real government
// integration; the code is returned in the send response for demonstration.
type AadhaarOTP struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AadhaarNumber string    `gorm:"size:12;not null" json:"aadhaar_number"`
	OTPCode       string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt     time.Time `gorm:"not null" json:"expires_at"`
	Verified      bool      `gorm:"default:false" json:"verified"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

type SendOTPRequest struct {
	AadhaarNumber string `json:"aadhaar_number" validate:"required,len=12,numeric"`
}

type SendOTPResponse struct {
	// DemoOTP is exposed because the portal has no SMS gateway.
	DemoOTP   string    `json:"demo_otp"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VerifyOTPRequest struct {
	AadhaarNumber string `json:"aadhaar_number" validate:"required,len=12,numeric"`
	OTP           string `json:"otp" validate:"required,len=6,numeric"`
}
