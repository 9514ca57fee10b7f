package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/legitflash/boomquotes-backend/internal/config"
	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories"
	"github.com/legitflash/boomquotes-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Compile-time check to ensure StreakServiceImpl implements StreakService
var _ StreakService = (*StreakServiceImpl)(nil)

// StreakServiceImpl advances or resets a user's streak when they complete a
// day, and mints airtime rewards at the streak milestone.
type StreakServiceImpl struct {
	streakRepo repositories.StreakRepository
	rewardRepo repositories.RewardRepository
	userRepo   repositories.UserRepository
	cfg        config.CheckinConfig
	logger     *zap.Logger
	now        func() time.Time
}

// NewStreakService creates a new StreakServiceImpl
func NewStreakService(streakRepo repositories.StreakRepository, rewardRepo repositories.RewardRepository, userRepo repositories.UserRepository, cfg config.CheckinConfig, logger *zap.Logger) *StreakServiceImpl {
	return &StreakServiceImpl{
		streakRepo: streakRepo,
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the time source for tests.
func (s *StreakServiceImpl) WithClock(now func() time.Time) *StreakServiceImpl {
	s.now = now
	return s
}

// OnDayCompleted updates the streak for a completed day. Consecutive days
// advance the streak, a gap resets it to 1, and a repeated date is a no-op.
func (s *StreakServiceImpl) OnDayCompleted(ctx context.Context, userID primitive.ObjectID, date string) (*models.CheckinStreak, error) {
	streak, err := s.streakRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to load streak: %w", err)
		}
		streak = &models.CheckinStreak{UserID: userID}
	}

	// Idempotence guard: this day was already counted.
	if streak.LastCheckinDate == date {
		return streak, nil
	}

	switch streak.LastCheckinDate {
	case utils.PreviousDay(date):
		streak.CurrentStreak++
	default:
		// Gap or first-ever completion.
		streak.CurrentStreak = 1
	}

	streak.LastCheckinDate = date
	streak.TotalDays++
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.UpdatedAt = s.now()

	if err := s.streakRepo.Upsert(ctx, streak); err != nil {
		return nil, fmt.Errorf("failed to persist streak: %w", err)
	}

	// Edge-triggered: a reward is minted only at the moment the streak
	// reaches the milestone, not on every day past it.
	if streak.CurrentStreak == s.cfg.StreakMilestone {
		reward := &models.AirtimeReward{
			UserID:       userID,
			Amount:       s.cfg.RewardAmount,
			Status:       models.RewardStatusPending,
			Source:       models.RewardSourceStreak,
			CheckInCount: s.cfg.StreakMilestone,
		}
		if err := s.rewardRepo.Create(ctx, reward); err != nil {
			return nil, fmt.Errorf("failed to create milestone reward: %w", err)
		}
		s.logger.Info("streak milestone reward created",
			zap.String("userId", userID.Hex()),
			zap.Int("amount", reward.Amount),
			zap.Int("streak", streak.CurrentStreak))
	}

	// First completed day ever: credit the referrer, if any.
	if streak.TotalDays == 1 {
		if err := s.creditReferrer(ctx, userID); err != nil {
			// A referral credit failure must not undo the user's own streak.
			s.logger.Error("referral credit failed", zap.String("userId", userID.Hex()), zap.Error(err))
		}
	}

	return streak, nil
}

// Get returns the user's streak, or a zero-valued streak if none exists yet.
func (s *StreakServiceImpl) Get(ctx context.Context, userID primitive.ObjectID) (*models.CheckinStreak, error) {
	streak, err := s.streakRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &models.CheckinStreak{UserID: userID}, nil
		}
		return nil, err
	}
	return streak, nil
}

func (s *StreakServiceImpl) creditReferrer(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.ReferredBy.IsZero() {
		return nil
	}

	reward := &models.AirtimeReward{
		UserID: user.ReferredBy,
		Amount: s.cfg.ReferralAmount,
		Status: models.RewardStatusPending,
		Source: models.RewardSourceReferral,
	}
	if err := s.rewardRepo.Create(ctx, reward); err != nil {
		return err
	}

	s.logger.Info("referral reward created",
		zap.String("referrerId", user.ReferredBy.Hex()),
		zap.String("referredId", userID.Hex()),
		zap.Int("amount", reward.Amount))
	return nil
}
