package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure CheckinRepository implements the interface
var _ repositories.CheckinRepository = (*CheckinRepository)(nil)

// CheckinRepository implements repositories.CheckinRepository backed by MongoDB
type CheckinRepository struct {
	collection *mongo.Collection
}

// NewCheckinRepository creates a new CheckinRepository
func NewCheckinRepository(db *mongo.Database) *CheckinRepository {
	return &CheckinRepository{
		collection: db.Collection("check_ins"),
	}
}

// FindByUserAndDate finds the check-in record for a user on a given day key
func (r *CheckinRepository) FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.CheckIn, error) {
	var checkin models.CheckIn
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&checkin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &checkin, nil
}

// Upsert writes the whole check-in document keyed by (userId, date) so a
// request's mutations land atomically.
func (r *CheckinRepository) Upsert(ctx context.Context, checkin *models.CheckIn) error {
	now := time.Now()
	if checkin.CreatedAt.IsZero() {
		checkin.CreatedAt = now
	}
	checkin.UpdatedAt = now

	filter := bson.M{"userId": checkin.UserID, "date": checkin.Date}
	res, err := r.collection.ReplaceOne(ctx, filter, checkin, options.Replace().SetUpsert(true))
	if err != nil {
		return err
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		checkin.ID = oid
	}
	return nil
}

// FindByUser returns the most recent check-ins for a user
func (r *CheckinRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]*models.CheckIn, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.M{"date": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkins []*models.CheckIn
	if err := cursor.All(ctx, &checkins); err != nil {
		return nil, err
	}
	return checkins, nil
}
