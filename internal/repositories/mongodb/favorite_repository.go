package mongodb

import (
	"context"
	"time"

	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure FavoriteRepository implements the interface
var _ repositories.FavoriteRepository = (*FavoriteRepository)(nil)

// FavoriteRepository implements repositories.FavoriteRepository backed by MongoDB
type FavoriteRepository struct {
	collection *mongo.Collection
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{
		collection: db.Collection("favorites"),
	}
}

// Create upserts a favorite keyed by (userId, quoteId) so double-taps do not
// produce duplicates.
func (r *FavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	favorite.CreatedAt = time.Now()
	filter := bson.M{"userId": favorite.UserID, "quoteId": favorite.QuoteID}
	update := bson.M{"$setOnInsert": favorite}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Delete removes a favorite
func (r *FavoriteRepository) Delete(ctx context.Context, userID, quoteID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "quoteId": quoteID})
	return err
}

// FindByUser returns a user's favorites, newest first
func (r *FavoriteRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Favorite, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var favorites []*models.Favorite
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// Exists reports whether a favorite exists
func (r *FavoriteRepository) Exists(ctx context.Context, userID, quoteID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID, "quoteId": quoteID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
