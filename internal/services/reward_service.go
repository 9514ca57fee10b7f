package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories"
	"github.com/legitflash/boomquotes-backend/internal/utils"
	"github.com/legitflash/boomquotes-backend/pkg/reloadly"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AirtimeGateway is the payout capability the reward service depends on.
// *reloadly.Client satisfies it.
type AirtimeGateway interface {
	SendTopup(ctx context.Context, phone, countryISO string, amount float64) (*reloadly.TopupResult, error)
}

// Compile-time check to ensure RewardServiceImpl implements RewardService
var _ RewardService = (*RewardServiceImpl)(nil)

// RewardServiceImpl drives the reward lifecycle: pending → processing →
// sent or failed. Payout failures are recorded on the reward and never touch
// check-in or streak state.
type RewardServiceImpl struct {
	rewardRepo repositories.RewardRepository
	userRepo   repositories.UserRepository
	gateway    AirtimeGateway
	logger     *zap.Logger
}

// NewRewardService creates a new RewardServiceImpl
func NewRewardService(rewardRepo repositories.RewardRepository, userRepo repositories.UserRepository, gateway AirtimeGateway, logger *zap.Logger) *RewardServiceImpl {
	return &RewardServiceImpl{
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

// Redeem pays out the user's oldest pending reward to their profile phone
// number. The phone requirement is checked before anything leaves the
// process.
func (s *RewardServiceImpl) Redeem(ctx context.Context, userID primitive.ObjectID) (*models.AirtimeReward, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Phone == "" {
		return nil, ErrPhoneRequired
	}

	reward, err := s.rewardRepo.FindOldestPending(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoPendingReward
		}
		return nil, fmt.Errorf("failed to load pending reward: %w", err)
	}

	return s.process(ctx, reward, user)
}

// Retry re-runs redemption for a previously failed reward owned by the caller.
func (s *RewardServiceImpl) Retry(ctx context.Context, userID, rewardID primitive.ObjectID) (*models.AirtimeReward, error) {
	reward, err := s.rewardRepo.FindByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to load reward: %w", err)
	}
	if reward.UserID != userID {
		return nil, ErrRewardNotFound
	}
	if reward.Status != models.RewardStatusFailed {
		return nil, ErrRewardNotRetryable
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Phone == "" {
		return nil, ErrPhoneRequired
	}

	return s.process(ctx, reward, user)
}

// List returns a user's reward history, newest first.
func (s *RewardServiceImpl) List(ctx context.Context, userID primitive.ObjectID) ([]*models.AirtimeReward, error) {
	return s.rewardRepo.FindByUser(ctx, userID)
}

// process marks the reward processing, calls the gateway, and records the
// outcome. A gateway failure is written to the reward, not returned as an
// error, so the caller always gets the reward's final state.
func (s *RewardServiceImpl) process(ctx context.Context, reward *models.AirtimeReward, user *models.User) (*models.AirtimeReward, error) {
	country := user.CountryISO
	if country == "" {
		country = utils.CountryFromPhone(user.Phone)
	}

	reward.Phone = user.Phone
	reward.Status = models.RewardStatusProcessing
	reward.FailureReason = ""
	if err := s.rewardRepo.Update(ctx, reward); err != nil {
		return nil, fmt.Errorf("failed to mark reward processing: %w", err)
	}

	result, err := s.gateway.SendTopup(ctx, user.Phone, country, float64(reward.Amount))
	if err != nil {
		reward.Status = models.RewardStatusFailed
		reward.FailureReason = err.Error()
		if uerr := s.rewardRepo.Update(ctx, reward); uerr != nil {
			return nil, fmt.Errorf("failed to record payout failure: %w", uerr)
		}
		s.logger.Warn("airtime payout failed",
			zap.String("rewardId", reward.ID.Hex()),
			zap.String("userId", user.ID.Hex()),
			zap.Error(err))
		return reward, nil
	}

	reward.Status = models.RewardStatusSent
	reward.TransactionRef = result.TransactionID
	if err := s.rewardRepo.Update(ctx, reward); err != nil {
		return nil, fmt.Errorf("failed to record payout success: %w", err)
	}

	s.logger.Info("airtime payout sent",
		zap.String("rewardId", reward.ID.Hex()),
		zap.String("userId", user.ID.Hex()),
		zap.String("operator", result.OperatorName),
		zap.Float64("delivered", result.DeliveredAmount),
		zap.String("currency", result.Currency))
	return reward, nil
}
