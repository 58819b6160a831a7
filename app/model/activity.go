package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActivityApplicationSubmit   = "application-submit"
	ActivityDocumentUpload      = "document-upload"
	ActivityDocumentVerified    = "document-verified"
	ActivityApplicationApproved = "application-approved"
	ActivityApplicationRejected = "application-rejected"
	ActivityFundingRequest      = "funding-request"
)

// ActivityLog is an append-only audit entry stored in MongoDB. Entries are
// written on creation, upload and status-change events and are never mutated.
type ActivityLog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ApplicationID string             `bson:"applicationId" json:"application_id"`
	Type          string             `bson:"type" json:"type"`
	Message       string             `bson:"message" json:"message"`
	CreatedBy     string             `bson:"createdBy,omitempty" json:"created_by,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"created_at"`
}
