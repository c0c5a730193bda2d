package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careernav/internal/model"
)

// ResultRepo stores finished assessment results for the dashboard
type ResultRepo interface {
	Create(ctx context.Context, result *model.TestResult) error
	GetByUserID(ctx context.Context, userID string) ([]*model.TestResult, error)
	List(ctx context.Context, limit int64) ([]*model.TestResult, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("test_results"),
	}
}

func (r *resultRepo) Create(ctx context.Context, result *model.TestResult) error {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	res, err := r.collection.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid.Hex()
	}
	return nil
}

// GetByUserID returns a user's results, latest first
func (r *resultRepo) GetByUserID(ctx context.Context, userID string) ([]*model.TestResult, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.TestResult
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// List returns the most recent results across all users
func (r *resultRepo) List(ctx context.Context, limit int64) ([]*model.TestResult, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.TestResult
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
