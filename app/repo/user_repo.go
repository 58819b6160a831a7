package repo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindByAadhaar(aadhaarNumber string) (*model.User, error)
	Update(user *model.User) error
	UpdateProfile(id uuid.UUID, req model.UpdateProfileRequest) error
	MarkAadhaarVerified(id uuid.UUID) error
	ClearRefreshToken(id uuid.UUID) error
	AddBlacklistToken(token model.BlacklistedToken) error
}

type UserRepo struct {
	DB *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{DB: db}
}

func (r *UserRepo) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByAadhaar(aadhaarNumber string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("aadhaar_number = ?", aadhaarNumber).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepo) UpdateProfile(id uuid.UUID, req model.UpdateProfileRequest) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Qualification != "" {
		updates["qualification"] = req.Qualification
	}
	return r.DB.Model(&model.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepo) MarkAadhaarVerified(id uuid.UUID) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"aadhaar_verified":    true,
		"aadhaar_verified_at": now,
	}).Error
}

func (r *UserRepo) ClearRefreshToken(id uuid.UUID) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("refresh_token", "").Error
}

func (r *UserRepo) AddBlacklistToken(token model.BlacklistedToken) error {
	return r.DB.Create(&token).Error
}
