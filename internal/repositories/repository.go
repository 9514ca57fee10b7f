package repositories

import (
	"context"
	"errors"

	"github.com/legitflash/boomquotes-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by all repositories when a record does not exist.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByReferralCode(ctx context.Context, code string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// CheckinRepository defines the interface for check-in data operations.
// A check-in is keyed by (userId, date).
type CheckinRepository interface {
	FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.CheckIn, error)
	Upsert(ctx context.Context, checkin *models.CheckIn) error
	FindByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]*models.CheckIn, error)
}

// StreakRepository defines the interface for streak data operations.
// A streak is keyed by userId and is unique per user.
type StreakRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.CheckinStreak, error)
	Upsert(ctx context.Context, streak *models.CheckinStreak) error
}

// RewardRepository defines the interface for airtime reward operations
type RewardRepository interface {
	Create(ctx context.Context, reward *models.AirtimeReward) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AirtimeReward, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.AirtimeReward, error)
	FindOldestPending(ctx context.Context, userID primitive.ObjectID) (*models.AirtimeReward, error)
	Update(ctx context.Context, reward *models.AirtimeReward) error
}

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	CreateMany(ctx context.Context, quotes []*models.Quote) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quote, error)
	FindByCategory(ctx context.Context, category string, page, limit int) ([]*models.Quote, error)
	FindRandom(ctx context.Context, category string) (*models.Quote, error)
	Count(ctx context.Context) (int64, error)
}

// FavoriteRepository defines the interface for favorite data operations
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID, quoteID primitive.ObjectID) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Favorite, error)
	Exists(ctx context.Context, userID, quoteID primitive.ObjectID) (bool, error)
}
