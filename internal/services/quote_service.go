package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Compile-time check to ensure QuoteServiceImpl implements QuoteService
var _ QuoteService = (*QuoteServiceImpl)(nil)

// QuoteServiceImpl serves the quote and message catalog and per-user favorites
type QuoteServiceImpl struct {
	quoteRepo    repositories.QuoteRepository
	favoriteRepo repositories.FavoriteRepository
	logger       *zap.Logger
}

// NewQuoteService creates a new QuoteServiceImpl
func NewQuoteService(quoteRepo repositories.QuoteRepository, favoriteRepo repositories.FavoriteRepository, logger *zap.Logger) *QuoteServiceImpl {
	return &QuoteServiceImpl{
		quoteRepo:    quoteRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// List returns quotes in a category with pagination
func (s *QuoteServiceImpl) List(ctx context.Context, category string, page, limit int) ([]*models.Quote, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.quoteRepo.FindByCategory(ctx, category, page, limit)
}

// Random returns one random quote, optionally restricted to a category
func (s *QuoteServiceImpl) Random(ctx context.Context, category string) (*models.Quote, error) {
	return s.quoteRepo.FindRandom(ctx, category)
}

// Seed bulk-loads quotes into the catalog and returns how many were written
func (s *QuoteServiceImpl) Seed(ctx context.Context, quotes []*models.Quote) (int, error) {
	for _, q := range quotes {
		if q.Text == "" || q.Category == "" {
			return 0, errors.New("every quote needs a category and text")
		}
		if q.Kind == "" {
			q.Kind = models.QuoteKindQuote
		}
	}
	if err := s.quoteRepo.CreateMany(ctx, quotes); err != nil {
		return 0, fmt.Errorf("failed to seed quotes: %w", err)
	}
	s.logger.Info("quotes seeded", zap.Int("count", len(quotes)))
	return len(quotes), nil
}

// Favorite saves a quote for a user
func (s *QuoteServiceImpl) Favorite(ctx context.Context, userID, quoteID primitive.ObjectID) error {
	if _, err := s.quoteRepo.FindByID(ctx, quoteID); err != nil {
		return err
	}
	return s.favoriteRepo.Create(ctx, &models.Favorite{UserID: userID, QuoteID: quoteID})
}

// Unfavorite removes a saved quote
func (s *QuoteServiceImpl) Unfavorite(ctx context.Context, userID, quoteID primitive.ObjectID) error {
	return s.favoriteRepo.Delete(ctx, userID, quoteID)
}

// ListFavorites returns the quotes a user has saved, newest first
func (s *QuoteServiceImpl) ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]*models.Quote, error) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	quotes := make([]*models.Quote, 0, len(favorites))
	for _, f := range favorites {
		q, err := s.quoteRepo.FindByID(ctx, f.QuoteID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}
