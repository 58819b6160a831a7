package service

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
)

// Fakes surface the same sentinel the gorm-backed repos do so the services'
// not-found handling is exercised for real.
var errNotFound = gorm.ErrRecordNotFound

// newTestApp builds a fiber app with a stand-in for the auth middleware that
// injects the given identity into request locals.
func newTestApp(userID uuid.UUID, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	})
	return app
}

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*model.Document

	verifyCalls []verifyCall
	attachCalls int
	verifyErr   error

	pending []model.PendingDocumentItem
	history []model.VerificationHistoryItem
}

type verifyCall struct {
	id         uuid.UUID
	status     string
	notes      string
	verifierID uuid.UUID
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[uuid.UUID]*model.Document{}}
}

func (f *fakeDocumentRepo) FindByID(id uuid.UUID) (*model.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeDocumentRepo) FindByApplicationID(applicationID uuid.UUID) ([]model.Document, error) {
	var out []model.Document
	for _, d := range f.docs {
		if d.ApplicationID == applicationID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) AttachFile(id uuid.UUID, filePath string, fileSize int64, mimeType string) error {
	f.attachCalls++
	doc, ok := f.docs[id]
	if !ok {
		return errNotFound
	}
	doc.FilePath = filePath
	doc.FileSize = fileSize
	doc.MimeType = mimeType
	doc.Status = model.DocStatusUploaded
	doc.VerificationStatus = model.VerificationPending
	return nil
}

func (f *fakeDocumentRepo) Verify(id uuid.UUID, status, notes string, verifierID uuid.UUID) error {
	if f.verifyErr != nil {
		return f.verifyErr
	}
	f.verifyCalls = append(f.verifyCalls, verifyCall{id: id, status: status, notes: notes, verifierID: verifierID})
	if doc, ok := f.docs[id]; ok {
		doc.VerificationStatus = status
		doc.VerificationNotes = notes
	}
	return nil
}

func (f *fakeDocumentRepo) FindPending() ([]model.PendingDocumentItem, error) {
	return f.pending, nil
}

func (f *fakeDocumentRepo) VerificationHistory(limit, offset int) ([]model.VerificationHistoryItem, error) {
	return f.history, nil
}

type fakeApplicationRepo struct {
	apps map[uuid.UUID]*model.Application

	approveErr   error
	rejectErr    error
	approveCalls int

	listings []model.StartupListing
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[uuid.UUID]*model.Application{}}
}

func (f *fakeApplicationRepo) Create(userID uuid.UUID, req model.CreateApplicationRequest) (*model.Application, error) {
	app := &model.Application{
		ID:            uuid.New(),
		ApplicationID: "AYUSH-2026-000001",
		UserID:        userID,
		CompanyName:   req.CompanyName,
		AyushCategory: req.AyushCategory,
		Status:        model.StatusDraft,
		CurrentStep:   1,
		TotalSteps:    model.TotalSteps,
	}
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeApplicationRepo) FindByID(id uuid.UUID) (*model.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *app
	return &cp, nil
}

func (f *fakeApplicationRepo) FindByUserID(userID uuid.UUID) (*model.Application, error) {
	for _, a := range f.apps {
		if a.UserID == userID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeApplicationRepo) FindAllForAdmin(page, limit int) ([]model.ApplicationAdminItem, int64, error) {
	var items []model.ApplicationAdminItem
	for _, a := range f.apps {
		items = append(items, model.ApplicationAdminItem{Application: *a})
	}
	return items, int64(len(items)), nil
}

func (f *fakeApplicationRepo) FindApprovedSeekingFunding() ([]model.StartupListing, error) {
	return f.listings, nil
}

func (f *fakeApplicationRepo) SyncProgress(app *model.Application, docs []model.Document) error {
	if app.IsTerminal() {
		return nil
	}
	status, step := model.DeriveProgress(docs)
	app.Status = status
	app.CurrentStep = step
	return nil
}

func (f *fakeApplicationRepo) Approve(id, reviewerID uuid.UUID) error {
	f.approveCalls++
	if f.approveErr != nil {
		return f.approveErr
	}
	app, ok := f.apps[id]
	if !ok {
		return errNotFound
	}
	app.Status = model.StatusApproved
	app.CurrentStep = model.TotalSteps
	return nil
}

func (f *fakeApplicationRepo) Reject(id, reviewerID uuid.UUID) error {
	if f.rejectErr != nil {
		return f.rejectErr
	}
	app, ok := f.apps[id]
	if !ok {
		return errNotFound
	}
	app.Status = model.StatusRejected
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByAadhaar(aadhaarNumber string) (*model.User, error) {
	for _, u := range f.users {
		if u.AadhaarNumber == aadhaarNumber {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeUserRepo) Update(user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateProfile(id uuid.UUID, req model.UpdateProfileRequest) error {
	u, ok := f.users[id]
	if !ok {
		return errNotFound
	}
	if req.FullName != "" {
		u.FullName = req.FullName
	}
	return nil
}

func (f *fakeUserRepo) MarkAadhaarVerified(id uuid.UUID) error {
	u, ok := f.users[id]
	if !ok {
		return errNotFound
	}
	u.AadhaarVerified = true
	return nil
}

func (f *fakeUserRepo) ClearRefreshToken(id uuid.UUID) error {
	u, ok := f.users[id]
	if !ok {
		return errNotFound
	}
	u.RefreshToken = ""
	return nil
}

func (f *fakeUserRepo) AddBlacklistToken(token model.BlacklistedToken) error {
	return nil
}

type fakeActivityRepo struct {
	entries []model.ActivityLog
	err     error
}

func (f *fakeActivityRepo) Append(applicationID uuid.UUID, activityType, message string, createdBy *uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, model.ActivityLog{
		ApplicationID: applicationID.String(),
		Type:          activityType,
		Message:       message,
	})
	return nil
}

func (f *fakeActivityRepo) FindByApplicationID(applicationID uuid.UUID) ([]model.ActivityLog, error) {
	var out []model.ActivityLog
	for _, e := range f.entries {
		if e.ApplicationID == applicationID.String() {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeStorage struct {
	saveCalls int
	saved     map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}}
}

func (f *fakeStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	f.saveCalls++
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.saved[key] = data
	return nil
}

func (f *fakeStorage) URL(key string) string {
	return "/uploads/" + key
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.saved, key)
	return nil
}
