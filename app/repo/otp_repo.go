package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
)

type OTPRepository interface {
	Create(otp *model.AadhaarOTP) error
	FindValid(aadhaarNumber, code string) (*model.AadhaarOTP, error)
	MarkVerified(otp *model.AadhaarOTP) error
}

type OTPRepo struct {
	DB *gorm.DB
}

func NewOTPRepo(db *gorm.DB) *OTPRepo {
	return &OTPRepo{DB: db}
}

func (r *OTPRepo) Create(otp *model.AadhaarOTP) error {
	return r.DB.Create(otp).Error
}

func (r *OTPRepo) FindValid(aadhaarNumber, code string) (*model.AadhaarOTP, error) {
	var otp model.AadhaarOTP
	err := r.DB.Where("aadhaar_number = ? AND otp_code = ? AND verified = ? AND expires_at > ?",
		aadhaarNumber, code, false, time.Now()).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OTPRepo) MarkVerified(otp *model.AadhaarOTP) error {
	return r.DB.Model(otp).Update("verified", true).Error
}
