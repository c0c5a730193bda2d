package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careernav/internal/model"
)

// ProgressRepo persists in-flight test sessions, keyed by user id. It is the
// durable half of the save/load/clear contract the engine relies on to
// resume; the engine itself never talks to storage.
type ProgressRepo interface {
	Load(ctx context.Context, userID string) (*model.TestProgress, error)
	Save(ctx context.Context, progress *model.TestProgress) error
	Clear(ctx context.Context, userID string) error
}

type progressRepo struct {
	collection *mongo.Collection
}

func NewProgressRepo(db *mongo.Database) ProgressRepo {
	return &progressRepo{
		collection: db.Collection("test_progress"),
	}
}

// Load returns the saved progress for a user, or nil when none exists
func (r *progressRepo) Load(ctx context.Context, userID string) (*model.TestProgress, error) {
	var progress model.TestProgress
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&progress)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Save upserts the progress snapshot for its user
func (r *progressRepo) Save(ctx context.Context, progress *model.TestProgress) error {
	progress.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"userId": progress.UserID},
		bson.M{"$set": progress},
		options.Update().SetUpsert(true),
	)
	return err
}

// Clear removes any saved progress for a user
func (r *progressRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}
