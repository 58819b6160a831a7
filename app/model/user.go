package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleStartup  = "startup"
	RoleAdmin    = "admin"
	RoleInvestor = "investor"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email        string    `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	Phone        string    `gorm:"size:20" json:"phone,omitempty"`
	Qualification string   `gorm:"size:255" json:"qualification,omitempty"`
	Role         string    `gorm:"size:20;not null;default:startup" json:"role"`

	// Aadhaar demo verification
	AadhaarNumber     string     `gorm:"size:12" json:"-"`
	AadhaarVerified   bool       `gorm:"default:false" json:"aadhaar_verified"`
	AadhaarVerifiedAt *time.Time `json:"aadhaar_verified_at,omitempty"`

	// Investor profile
	CompanyName        string  `gorm:"size:255" json:"company_name,omitempty"`
	InvestmentCapacity float64 `json:"investment_capacity,omitempty"`
	InvestmentFocus    string  `gorm:"size:255" json:"investment_focus,omitempty"`

	RefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type RegisterRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
	Role          string `json:"role" validate:"required,oneof=startup investor"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
}

type LoginUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type JWTClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RefreshTokenResponse struct {
	Token string `json:"token"`
}
