package repo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
)

type FundingRepository interface {
	Create(req *model.FundingRequest) error
	FindByID(id uuid.UUID) (*model.FundingRequest, error)
	FindByInvestorID(investorID uuid.UUID) ([]model.FundingRequestItem, error)
	FindByApplicationID(applicationID uuid.UUID) ([]model.FundingRequestItem, error)
	UpdateStatus(id uuid.UUID, status string) error
}

type FundingRepo struct {
	DB *gorm.DB
}

func NewFundingRepo(db *gorm.DB) *FundingRepo {
	return &FundingRepo{DB: db}
}

func (r *FundingRepo) Create(req *model.FundingRequest) error {
	return r.DB.Create(req).Error
}

func (r *FundingRepo) FindByID(id uuid.UUID) (*model.FundingRequest, error) {
	var fr model.FundingRequest
	err := r.DB.First(&fr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

func (r *FundingRepo) FindByInvestorID(investorID uuid.UUID) ([]model.FundingRequestItem, error) {
	var items []model.FundingRequestItem
	err := r.DB.Raw(`
		SELECT fr.*, a.company_name
		FROM funding_requests fr
		JOIN applications a ON a.id = fr.application_id
		WHERE fr.investor_id = ?
		ORDER BY fr.created_at DESC`, investorID,
	).Scan(&items).Error
	return items, err
}

func (r *FundingRepo) FindByApplicationID(applicationID uuid.UUID) ([]model.FundingRequestItem, error) {
	var items []model.FundingRequestItem
	err := r.DB.Raw(`
		SELECT fr.*, a.company_name, u.full_name AS investor_name
		FROM funding_requests fr
		JOIN applications a ON a.id = fr.application_id
		JOIN users u ON u.id = fr.investor_id
		WHERE fr.application_id = ?
		ORDER BY fr.created_at DESC`, applicationID,
	).Scan(&items).Error
	return items, err
}

func (r *FundingRepo) UpdateStatus(id uuid.UUID, status string) error {
	return r.DB.Model(&model.FundingRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}).Error
}
