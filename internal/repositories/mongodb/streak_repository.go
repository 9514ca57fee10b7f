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

// Compile-time check to ensure StreakRepository implements the interface
var _ repositories.StreakRepository = (*StreakRepository)(nil)

// StreakRepository implements repositories.StreakRepository backed by MongoDB
type StreakRepository struct {
	collection *mongo.Collection
}

// NewStreakRepository creates a new StreakRepository
func NewStreakRepository(db *mongo.Database) *StreakRepository {
	return &StreakRepository{
		collection: db.Collection("checkin_streaks"),
	}
}

// FindByUser finds the streak record for a user
func (r *StreakRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.CheckinStreak, error) {
	var streak models.CheckinStreak
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&streak)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &streak, nil
}

// Upsert writes the whole streak document keyed by userId
func (r *StreakRepository) Upsert(ctx context.Context, streak *models.CheckinStreak) error {
	streak.UpdatedAt = time.Now()

	filter := bson.M{"userId": streak.UserID}
	res, err := r.collection.ReplaceOne(ctx, filter, streak, options.Replace().SetUpsert(true))
	if err != nil {
		return err
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		streak.ID = oid
	}
	return nil
}
