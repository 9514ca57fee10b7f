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

// Compile-time check to ensure RewardRepository implements the interface
var _ repositories.RewardRepository = (*RewardRepository)(nil)

// RewardRepository implements repositories.RewardRepository backed by MongoDB
type RewardRepository struct {
	collection *mongo.Collection
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{
		collection: db.Collection("airtime_rewards"),
	}
}

// Create inserts a new reward
func (r *RewardRepository) Create(ctx context.Context, reward *models.AirtimeReward) error {
	reward.CreatedAt = time.Now()
	reward.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, reward)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		reward.ID = oid
	}
	return nil
}

// FindByID finds a reward by ID
func (r *RewardRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AirtimeReward, error) {
	var reward models.AirtimeReward
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reward)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &reward, nil
}

// FindByUser returns a user's rewards, newest first
func (r *RewardRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.AirtimeReward, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rewards []*models.AirtimeReward
	if err := cursor.All(ctx, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

// FindOldestPending returns the user's oldest reward still in pending status
func (r *RewardRepository) FindOldestPending(ctx context.Context, userID primitive.ObjectID) (*models.AirtimeReward, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": 1})

	var reward models.AirtimeReward
	err := r.collection.FindOne(ctx, bson.M{
		"userId": userID,
		"status": models.RewardStatusPending,
	}, opts).Decode(&reward)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &reward, nil
}

// Update replaces a reward document
func (r *RewardRepository) Update(ctx context.Context, reward *models.AirtimeReward) error {
	reward.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": reward.ID}, reward)
	return err
}
