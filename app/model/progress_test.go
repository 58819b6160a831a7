package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func docWith(file bool, verification string) Document {
	d := Document{Name: "Business Plan", Status: DocStatusRequired}
	if file {
		d.FilePath = "user/doc_1700000000.pdf"
		d.Status = DocStatusUploaded
	}
	d.VerificationStatus = verification
	return d
}

func checklist(uploaded int, statuses ...string) []Document {
	docs := make([]Document, 0, 4)
	for i := 0; i < 4; i++ {
		status := ""
		if i < len(statuses) {
			status = statuses[i]
		}
		docs = append(docs, docWith(i < uploaded, status))
	}
	return docs
}

func TestDeriveProgress(t *testing.T) {
	tests := []struct {
		name       string
		docs       []Document
		wantStatus string
		wantStep   int
	}{
		{
			name:       "empty checklist",
			docs:       checklist(0),
			wantStatus: StatusDraft,
			wantStep:   1,
		},
		{
			name:       "no documents at all",
			docs:       nil,
			wantStatus: StatusDraft,
			wantStep:   1,
		},
		{
			name:       "one uploaded",
			docs:       checklist(1, VerificationPending),
			wantStatus: StatusDraft,
			wantStep:   2,
		},
		{
			name:       "all uploaded none approved",
			docs:       checklist(4, VerificationPending, VerificationPending, VerificationPending, VerificationPending),
			wantStatus: StatusSubmitted,
			wantStep:   3,
		},
		{
			name:       "all uploaded some approved",
			docs:       checklist(4, VerificationApproved, VerificationApproved, VerificationPending, VerificationUnderReview),
			wantStatus: StatusSubmitted,
			wantStep:   3,
		},
		{
			name:       "all uploaded all approved",
			docs:       checklist(4, VerificationApproved, VerificationApproved, VerificationApproved, VerificationApproved),
			wantStatus: StatusUnderReview,
			wantStep:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, step := DeriveProgress(tt.docs)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStep, step)
		})
	}
}

// A rejected document pulls a fully reviewed application back out of
// under-review: the checklist is still complete, so the derived state is
// submitted, not under-review.
func TestDeriveProgressRejectionReverts(t *testing.T) {
	docs := checklist(4, VerificationApproved, VerificationApproved, VerificationApproved, VerificationApproved)

	status, step := DeriveProgress(docs)
	assert.Equal(t, StatusUnderReview, status)
	assert.Equal(t, 4, step)

	docs[3].VerificationStatus = VerificationRejected
	docs[3].VerificationNotes = "illegible scan"

	status, step = DeriveProgress(docs)
	assert.Equal(t, StatusSubmitted, status)
	assert.Equal(t, 3, step)
}

func TestDeriveProgressWalksTheLifecycle(t *testing.T) {
	// Fresh application: empty checklist.
	docs := checklist(0)
	status, step := DeriveProgress(docs)
	assert.Equal(t, StatusDraft, status)
	assert.Equal(t, 1, step)

	// All four files uploaded.
	docs = checklist(4, VerificationPending, VerificationPending, VerificationPending, VerificationPending)
	status, step = DeriveProgress(docs)
	assert.Equal(t, StatusSubmitted, status)
	assert.Equal(t, 3, step)

	// Reviewer approves every document.
	for i := range docs {
		docs[i].VerificationStatus = VerificationApproved
	}
	status, step = DeriveProgress(docs)
	assert.Equal(t, StatusUnderReview, status)
	assert.Equal(t, 4, step)
}

func TestValidVerificationStatus(t *testing.T) {
	assert.True(t, ValidVerificationStatus(VerificationApproved))
	assert.True(t, ValidVerificationStatus(VerificationRejected))
	assert.True(t, ValidVerificationStatus(VerificationUnderReview))

	// Pending is set by uploads, never by a reviewer.
	assert.False(t, ValidVerificationStatus(VerificationPending))
	assert.False(t, ValidVerificationStatus(""))
	assert.False(t, ValidVerificationStatus("verified"))
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []string{StatusDraft, StatusSubmitted, StatusUnderReview} {
		app := Application{Status: status}
		assert.False(t, app.IsTerminal(), status)
	}
	for _, status := range []string{StatusApproved, StatusRejected} {
		app := Application{Status: status}
		assert.True(t, app.IsTerminal(), status)
	}
}
