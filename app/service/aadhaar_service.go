package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
	"github.com/trishhi-git/ayush-launchpad-app/app/repo"
	"github.com/trishhi-git/ayush-launchpad-app/helper"
)

// AadhaarService implements the demo OTP flow. There is no real government
// integration; codes are stored in the database and echoed back in the send
// response so the flow can be exercised without an SMS gateway.
type AadhaarService struct {
	otpRepo  repo.OTPRepository
	userRepo repo.UserRepository
}

func NewAadhaarService(otpRepo repo.OTPRepository, userRepo repo.UserRepository) *AadhaarService {
	return &AadhaarService{otpRepo: otpRepo, userRepo: userRepo}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// POST /api/v1/auth/aadhaar/send-otp
func (s *AadhaarService) SendOTP(c *fiber.Ctx) error {
	var req model.SendOTPRequest
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

	code, err := generateOTP()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate OTP",
		})
	}

	otp := model.AadhaarOTP{
		AadhaarNumber: req.AadhaarNumber,
		OTPCode:       code,
		ExpiresAt:     time.Now().Add(10 * time.Minute),
	}

	if err := s.otpRepo.Create(&otp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to send OTP",
		})
	}

	return c.JSON(model.SuccessResponse[model.SendOTPResponse]{
		Success: true,
		Message: "OTP sent to your registered mobile number",
		Data: model.SendOTPResponse{
			DemoOTP:   code,
			ExpiresAt: otp.ExpiresAt,
		},
	})
}

// POST /api/v1/auth/aadhaar/verify-otp
func (s *AadhaarService) VerifyOTP(c *fiber.Ctx) error {
	var req model.VerifyOTPRequest
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

	otp, err := s.otpRepo.FindValid(req.AadhaarNumber, req.OTP)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid or expired OTP",
		})
	}

	if err := s.otpRepo.MarkVerified(otp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "OTP verification failed",
		})
	}

	// Stamp the Aadhaar verification onto the logged-in user, if any.
	if userID, ok := c.Locals("user_id").(uuid.UUID); ok {
		if user, err := s.userRepo.FindByID(userID); err == nil {
			user.AadhaarNumber = req.AadhaarNumber
			if err := s.userRepo.Update(user); err == nil {
				s.userRepo.MarkAadhaarVerified(userID)
			}
		}
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Aadhaar verified",
	})
}
