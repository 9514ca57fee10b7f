package services

import (
	"context"

	"github.com/legitflash/boomquotes-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckinService defines the interface for the daily check-in state machine
type CheckinService interface {
	// HandleButtonClick validates and applies one button-click event for the
	// current UTC day.
	HandleButtonClick(ctx context.Context, userID primitive.ObjectID, buttonNumber int) (*models.ClickResult, error)

	// GetToday returns the caller's check-in status for the current UTC day.
	GetToday(ctx context.Context, userID primitive.ObjectID) (*models.TodayStatus, error)
}

// StreakService defines the interface for streak bookkeeping
type StreakService interface {
	// OnDayCompleted records that the user completed their check-in for the
	// given day key and returns the updated streak. Calling it twice for the
	// same day is a no-op.
	OnDayCompleted(ctx context.Context, userID primitive.ObjectID, date string) (*models.CheckinStreak, error)

	// Get returns the user's streak, or a zero-valued streak if none exists yet.
	Get(ctx context.Context, userID primitive.ObjectID) (*models.CheckinStreak, error)
}

// RewardService defines the interface for airtime reward redemption
type RewardService interface {
	Redeem(ctx context.Context, userID primitive.ObjectID) (*models.AirtimeReward, error)
	Retry(ctx context.Context, userID, rewardID primitive.ObjectID) (*models.AirtimeReward, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]*models.AirtimeReward, error)
}

// QuoteService defines the interface for quote browsing and favorites
type QuoteService interface {
	List(ctx context.Context, category string, page, limit int) ([]*models.Quote, error)
	Random(ctx context.Context, category string) (*models.Quote, error)
	Seed(ctx context.Context, quotes []*models.Quote) (int, error)
	Favorite(ctx context.Context, userID, quoteID primitive.ObjectID) error
	Unfavorite(ctx context.Context, userID, quoteID primitive.ObjectID) error
	ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]*models.Quote, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// UserService defines the interface for user profile operations
type UserService interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdatePhone(ctx context.Context, id primitive.ObjectID, phone string) (*models.User, error)
}
