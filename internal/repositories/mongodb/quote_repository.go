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

// Compile-time check to ensure QuoteRepository implements the interface
var _ repositories.QuoteRepository = (*QuoteRepository)(nil)

// QuoteRepository implements repositories.QuoteRepository backed by MongoDB
type QuoteRepository struct {
	collection *mongo.Collection
}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{
		collection: db.Collection("quotes"),
	}
}

// CreateMany inserts a batch of quotes
func (r *QuoteRepository) CreateMany(ctx context.Context, quotes []*models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(quotes))
	for _, q := range quotes {
		q.CreatedAt = time.Now()
		docs = append(docs, q)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByID finds a quote by ID
func (r *QuoteRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quote, error) {
	var quote models.Quote
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&quote)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindByCategory finds quotes by category with pagination. An empty category
// matches everything.
func (r *QuoteRepository) FindByCategory(ctx context.Context, category string, page, limit int) ([]*models.Quote, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quotes []*models.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// FindRandom returns one random quote, optionally restricted to a category
func (r *QuoteRepository) FindRandom(ctx context.Context, category string) (*models.Quote, error) {
	match := bson.M{}
	if category != "" {
		match["category"] = category
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sample", Value: bson.M{"size": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quotes []*models.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, repositories.ErrNotFound
	}
	return quotes[0], nil
}

// Count counts all quotes
func (r *QuoteRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
