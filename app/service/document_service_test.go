package service

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
)

func uploadRequest(t *testing.T, target, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func uploadFixture(userID uuid.UUID) (*fakeDocumentRepo, *fakeApplicationRepo, uuid.UUID) {
	docRepo := newFakeDocumentRepo()
	appRepo := newFakeApplicationRepo()

	appID := uuid.New()
	appRepo.apps[appID] = &model.Application{
		ID:            appID,
		ApplicationID: "AYUSH-2026-000007",
		UserID:        userID,
		Status:        model.StatusDraft,
		CurrentStep:   1,
	}

	docID := uuid.New()
	docRepo.docs[docID] = &model.Document{
		ID:            docID,
		ApplicationID: appID,
		Name:          "Business Plan",
		Status:        model.DocStatusRequired,
	}
	return docRepo, appRepo, docID
}

func TestUploadRejectsWrongMimeBeforeStorage(t *testing.T) {
	userID := uuid.New()
	docRepo, appRepo, docID := uploadFixture(userID)
	store := newFakeStorage()

	app := newTestApp(userID, model.RoleStartup)
	svc := NewDocumentService(docRepo, appRepo, &fakeActivityRepo{}, store)
	app.Post("/documents/:id/upload", svc.Upload)

	req := uploadRequest(t, "/documents/"+docID.String()+"/upload", "plan.zip", "application/zip", []byte("PK"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	assert.Zero(t, store.saveCalls)
	assert.Zero(t, docRepo.attachCalls)
}

func TestUploadRejectsOtherUsersDocument(t *testing.T) {
	ownerID := uuid.New()
	docRepo, appRepo, docID := uploadFixture(ownerID)
	store := newFakeStorage()

	app := newTestApp(uuid.New(), model.RoleStartup)
	svc := NewDocumentService(docRepo, appRepo, &fakeActivityRepo{}, store)
	app.Post("/documents/:id/upload", svc.Upload)

	req := uploadRequest(t, "/documents/"+docID.String()+"/upload", "plan.pdf", "application/pdf", []byte("%PDF-1.4"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 403, resp.StatusCode)
	assert.Zero(t, store.saveCalls)
}

func TestUploadStoresFileAndResetsVerification(t *testing.T) {
	userID := uuid.New()
	docRepo, appRepo, docID := uploadFixture(userID)
	activityRepo := &fakeActivityRepo{}
	store := newFakeStorage()

	// Simulate an earlier rejection so the reset is observable.
	docRepo.docs[docID].VerificationStatus = model.VerificationRejected
	docRepo.docs[docID].VerificationNotes = "illegible scan"

	app := newTestApp(userID, model.RoleStartup)
	svc := NewDocumentService(docRepo, appRepo, activityRepo, store)
	app.Post("/documents/:id/upload", svc.Upload)

	req := uploadRequest(t, "/documents/"+docID.String()+"/upload", "plan.pdf", "application/pdf", []byte("%PDF-1.4 better scan"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 1, store.saveCalls)
	assert.Equal(t, 1, docRepo.attachCalls)

	stored := docRepo.docs[docID]
	assert.Equal(t, model.DocStatusUploaded, stored.Status)
	assert.Equal(t, model.VerificationPending, stored.VerificationStatus)
	assert.Equal(t, "application/pdf", stored.MimeType)
	assert.NotEmpty(t, stored.FilePath)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, model.ActivityDocumentUpload, activityRepo.entries[0].Type)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out model.SuccessResponse[*model.Document]
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Success)
	assert.Equal(t, model.DocStatusUploaded, out.Data.Status)
}

func TestFileURLNeedsAnUpload(t *testing.T) {
	userID := uuid.New()
	docRepo, appRepo, docID := uploadFixture(userID)

	app := newTestApp(userID, model.RoleStartup)
	svc := NewDocumentService(docRepo, appRepo, &fakeActivityRepo{}, newFakeStorage())
	app.Get("/documents/:id/file", svc.FileURL)

	resp, err := app.Test(httptest.NewRequest("GET", "/documents/"+docID.String()+"/file", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestFileURLReturnsStorageURL(t *testing.T) {
	userID := uuid.New()
	docRepo, appRepo, docID := uploadFixture(userID)
	docRepo.docs[docID].FilePath = userID.String() + "/plan.pdf"

	app := newTestApp(userID, model.RoleStartup)
	svc := NewDocumentService(docRepo, appRepo, &fakeActivityRepo{}, newFakeStorage())
	app.Get("/documents/:id/file", svc.FileURL)

	resp, err := app.Test(httptest.NewRequest("GET", "/documents/"+docID.String()+"/file", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out model.SuccessResponse[string]
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "/uploads/"+userID.String()+"/plan.pdf", out.Data)
}
