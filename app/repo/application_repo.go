package repo

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
)

// ErrApprovalGate is returned when an admin tries to approve an application
// whose checklist is not fully approved. The gate is enforced here, at the
// write boundary, not in any UI.
var ErrApprovalGate = errors.New("all documents must be approved before the application can be approved")

// ErrTerminalStatus is returned when a decision is attempted on an
// application that already carries one.
var ErrTerminalStatus = errors.New("application has already been approved or rejected")

type ApplicationRepository interface {
	Create(userID uuid.UUID, req model.CreateApplicationRequest) (*model.Application, error)
	FindByID(id uuid.UUID) (*model.Application, error)
	FindByUserID(userID uuid.UUID) (*model.Application, error)
	FindAllForAdmin(page, limit int) ([]model.ApplicationAdminItem, int64, error)
	FindApprovedSeekingFunding() ([]model.StartupListing, error)
	SyncProgress(app *model.Application, docs []model.Document) error
	Approve(id, reviewerID uuid.UUID) error
	Reject(id, reviewerID uuid.UUID) error
}

type ApplicationRepo struct {
	DB *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db}
}

// nextApplicationID produces the human-readable case number, replacing the
// generate_application_id database trigger from the hosted variant.
func (r *ApplicationRepo) nextApplicationID(tx *gorm.DB) (string, error) {
	year := time.Now().Year()
	var count int64
	prefix := fmt.Sprintf("AYUSH-%d-", year)
	if err := tx.Model(&model.Application{}).Where("application_id LIKE ?", prefix+"%").Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%06d", prefix, count+1), nil
}

func (r *ApplicationRepo) Create(userID uuid.UUID, req model.CreateApplicationRequest) (*model.Application, error) {
	app := &model.Application{
		UserID:              userID,
		CompanyName:         req.CompanyName,
		AyushCategory:       req.AyushCategory,
		FoundedYear:         req.FoundedYear,
		BusinessModel:       req.BusinessModel,
		Location:            req.Location,
		BusinessDescription: req.BusinessDescription,
		TargetMarket:        req.TargetMarket,
		IsSeekingFunding:    req.IsSeekingFunding,
		FundingStage:        req.FundingStage,
		FundingGoal:         req.FundingGoal,
		EquityOffered:       req.EquityOffered,
		Status:              model.StatusDraft,
		CurrentStep:         1,
		TotalSteps:          model.TotalSteps,
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		code, err := r.nextApplicationID(tx)
		if err != nil {
			return err
		}
		app.ApplicationID = code

		if err := tx.Create(app).Error; err != nil {
			return err
		}

		// Every application starts with the fixed empty checklist.
		for _, name := range model.RequiredDocuments {
			doc := model.Document{
				ApplicationID: app.ID,
				Name:          name,
				Status:        model.DocStatusRequired,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
			app.Documents = append(app.Documents, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *ApplicationRepo) FindByID(id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.DB.First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepo) FindByUserID(userID uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.DB.Where("user_id = ?", userID).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepo) FindAllForAdmin(page, limit int) ([]model.ApplicationAdminItem, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.Application
	offset := (page - 1) * limit
	err := r.DB.Preload("Documents", func(db *gorm.DB) *gorm.DB {
		return db.Order("documents.created_at ASC")
	}).Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.ApplicationAdminItem, 0, len(apps))
	for _, a := range apps {
		items = append(items, model.ApplicationAdminItem{
			Application:  a,
			FounderName:  a.User.FullName,
			FounderEmail: a.User.Email,
		})
	}
	return items, total, nil
}

func (r *ApplicationRepo) FindApprovedSeekingFunding() ([]model.StartupListing, error) {
	var apps []model.Application
	err := r.DB.Where("status = ? AND is_seeking_funding = ?", model.StatusApproved, true).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	listings := make([]model.StartupListing, 0, len(apps))
	for _, a := range apps {
		listings = append(listings, model.StartupListing{
			ID:                  a.ID,
			ApplicationID:       a.ApplicationID,
			CompanyName:         a.CompanyName,
			AyushCategory:       a.AyushCategory,
			Location:            a.Location,
			FoundedYear:         a.FoundedYear,
			BusinessDescription: a.BusinessDescription,
			FundingStage:        a.FundingStage,
			FundingGoal:         a.FundingGoal,
			FundingRaised:       a.FundingRaised,
			EquityOffered:       a.EquityOffered,
		})
	}
	return listings, nil
}

// SyncProgress writes the document-derived status and step back to the
// application row, but only when they actually changed and never once an
// admin decision has been recorded. submitted_at is stamped the first time
// the checklist becomes complete.
func (r *ApplicationRepo) SyncProgress(app *model.Application, docs []model.Document) error {
	if app.IsTerminal() {
		return nil
	}

	status, step := model.DeriveProgress(docs)
	if app.Status == status && app.CurrentStep == step {
		return nil
	}

	updates := map[string]interface{}{
		"status":       status,
		"current_step": step,
		"updated_at":   time.Now(),
	}
	if status == model.StatusSubmitted && app.SubmittedAt == nil {
		now := time.Now()
		updates["submitted_at"] = now
		app.SubmittedAt = &now
	}

	err := r.DB.Model(&model.Application{}).
		Where("id = ? AND status NOT IN ?", app.ID, []string{model.StatusApproved, model.StatusRejected}).
		Updates(updates).Error
	if err != nil {
		return err
	}

	app.Status = status
	app.CurrentStep = step
	return nil
}

func (r *ApplicationRepo) Approve(id, reviewerID uuid.UUID) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var app model.Application
		if err := tx.First(&app, "id = ?", id).Error; err != nil {
			return err
		}
		if app.IsTerminal() {
			return ErrTerminalStatus
		}

		var unapproved int64
		err := tx.Model(&model.Document{}).
			Where("application_id = ? AND (verification_status IS NULL OR verification_status != ?)", id, model.VerificationApproved).
			Count(&unapproved).Error
		if err != nil {
			return err
		}
		if unapproved > 0 {
			return ErrApprovalGate
		}

		now := time.Now()
		return tx.Model(&model.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":       model.StatusApproved,
			"current_step": model.TotalSteps,
			"reviewed_at":  now,
			"reviewed_by":  reviewerID,
			"updated_at":   now,
		}).Error
	})
}

func (r *ApplicationRepo) Reject(id, reviewerID uuid.UUID) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var app model.Application
		if err := tx.First(&app, "id = ?", id).Error; err != nil {
			return err
		}
		if app.IsTerminal() {
			return ErrTerminalStatus
		}

		now := time.Now()
		return tx.Model(&model.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":      model.StatusRejected,
			"reviewed_at": now,
			"reviewed_by": reviewerID,
			"updated_at":  now,
		}).Error
	})
}
