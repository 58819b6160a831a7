package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
)

type ActivityRepository interface {
	Append(applicationID uuid.UUID, activityType, message string, createdBy *uuid.UUID) error
	FindByApplicationID(applicationID uuid.UUID) ([]model.ActivityLog, error)
}

// ActivityRepo persists the append-only audit feed in MongoDB. Entries are
// inserted, never updated or deleted.
type ActivityRepo struct {
	mongoDB *mongo.Database
}

func NewActivityRepo(mongoDB *mongo.Database) *ActivityRepo {
	return &ActivityRepo{mongoDB: mongoDB}
}

func (r *ActivityRepo) Append(applicationID uuid.UUID, activityType, message string, createdBy *uuid.UUID) error {
	entry := bson.M{
		"applicationId": applicationID.String(),
		"type":          activityType,
		"message":       message,
		"createdAt":     time.Now(),
	}
	if createdBy != nil {
		entry["createdBy"] = createdBy.String()
	}

	coll := r.mongoDB.Collection("activity_logs")
	_, err := coll.InsertOne(context.TODO(), entry)
	return err
}

func (r *ActivityRepo) FindByApplicationID(applicationID uuid.UUID) ([]model.ActivityLog, error) {
	coll := r.mongoDB.Collection("activity_logs")

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(context.TODO(), bson.M{"applicationId": applicationID.String()}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	var logs []model.ActivityLog
	for cursor.Next(context.TODO()) {
		var entry model.ActivityLog
		if err := cursor.Decode(&entry); err == nil {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}
