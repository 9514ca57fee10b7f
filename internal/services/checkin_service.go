package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/legitflash/boomquotes-backend/internal/config"
	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories"
	"github.com/legitflash/boomquotes-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Compile-time check to ensure CheckinServiceImpl implements CheckinService
var _ CheckinService = (*CheckinServiceImpl)(nil)

// CheckinServiceImpl is the daily check-in state machine. A day is completed
// by clicking buttons 1..N in order, each click separated by the cooldown.
type CheckinServiceImpl struct {
	checkinRepo   repositories.CheckinRepository
	streakService StreakService
	cfg           config.CheckinConfig
	logger        *zap.Logger
	now           func() time.Time

	// locks serializes HandleButtonClick per user so concurrent clicks from
	// multiple tabs cannot race past the cooldown check.
	mu    sync.Mutex
	locks map[primitive.ObjectID]*sync.Mutex
}

// NewCheckinService creates a new CheckinServiceImpl
func NewCheckinService(checkinRepo repositories.CheckinRepository, streakService StreakService, cfg config.CheckinConfig, logger *zap.Logger) *CheckinServiceImpl {
	return &CheckinServiceImpl{
		checkinRepo:   checkinRepo,
		streakService: streakService,
		cfg:           cfg,
		logger:        logger,
		now:           time.Now,
		locks:         make(map[primitive.ObjectID]*sync.Mutex),
	}
}

// WithClock overrides the time source. Tests use this to drive cooldowns.
func (s *CheckinServiceImpl) WithClock(now func() time.Time) *CheckinServiceImpl {
	s.now = now
	return s
}

func (s *CheckinServiceImpl) userLock(userID primitive.ObjectID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// HandleButtonClick validates one click against the ordering and cooldown
// rules and applies it to today's record.
//
// A button whose cooldown has expired may be clicked again; the existing
// entry is overwritten in place without advancing the click count. The
// shipped client behaves this way and users rely on it to refresh a
// button's cooldown, so it is kept deliberately.
func (s *CheckinServiceImpl) HandleButtonClick(ctx context.Context, userID primitive.ObjectID, buttonNumber int) (*models.ClickResult, error) {
	if buttonNumber < 1 || buttonNumber > s.cfg.ButtonsPerDay {
		return nil, ErrInvalidButtonNumber
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()
	date := utils.DateKey(now)

	checkin, err := s.checkinRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to load check-in: %w", err)
		}
		checkin = &models.CheckIn{
			UserID:       userID,
			Date:         date,
			ButtonClicks: []models.ButtonClick{},
		}
	}

	if checkin.Completed {
		return nil, ErrAlreadyCompleted
	}

	// Sequential gating: every earlier button must be clicked and cooled down.
	for n := 1; n < buttonNumber; n++ {
		prev := checkin.Click(n)
		if prev == nil || now.Before(prev.CooldownUntil) {
			return nil, ErrInvalidTransition
		}
	}

	existing := checkin.Click(buttonNumber)
	if existing != nil && now.Before(existing.CooldownUntil) {
		remaining := int(math.Ceil(existing.CooldownUntil.Sub(now).Seconds()))
		return nil, &CooldownError{RemainingSeconds: remaining}
	}

	click := models.ButtonClick{
		ButtonNumber:  buttonNumber,
		ClickedAt:     now,
		AdShown:       true,
		CooldownUntil: now.Add(time.Duration(s.cfg.CooldownSeconds) * time.Second),
	}

	if existing != nil {
		*existing = click
	} else {
		checkin.ButtonClicks = append(checkin.ButtonClicks, click)
		checkin.ClickCount++
	}
	checkin.AdsShown++
	t := now
	checkin.LastClickAt = &t

	justCompleted := false
	if checkin.ClickCount >= s.cfg.ButtonsPerDay && !checkin.Completed {
		checkin.Completed = true
		completedAt := now
		checkin.CompletedAt = &completedAt
		justCompleted = true
	}

	if err := s.checkinRepo.Upsert(ctx, checkin); err != nil {
		return nil, fmt.Errorf("failed to persist check-in: %w", err)
	}

	var streak *models.CheckinStreak
	if justCompleted {
		streak, err = s.streakService.OnDayCompleted(ctx, userID, date)
		if err != nil {
			return nil, fmt.Errorf("day completed but streak update failed: %w", err)
		}
		s.logger.Info("check-in day completed",
			zap.String("userId", userID.Hex()),
			zap.String("date", date),
			zap.Int("currentStreak", streak.CurrentStreak))
	} else {
		streak, err = s.streakService.Get(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load streak: %w", err)
		}
	}

	return &models.ClickResult{
		Checkin:     checkin,
		ButtonClick: &click,
		Completed:   justCompleted,
		Streak:      streak,
	}, nil
}

// GetToday reports the caller's state for the current UTC day.
func (s *CheckinServiceImpl) GetToday(ctx context.Context, userID primitive.ObjectID) (*models.TodayStatus, error) {
	now := s.now()
	date := utils.DateKey(now)

	checkin, err := s.checkinRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to load check-in: %w", err)
	}

	streak, err := s.streakService.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	nextRewardAt := s.cfg.StreakMilestone - streak.CurrentStreak%s.cfg.StreakMilestone

	return &models.TodayStatus{
		TodayCheckin:     checkin,
		Streak:           streak,
		CanCompleteToday: checkin == nil || !checkin.Completed,
		NextRewardAt:     nextRewardAt,
	}, nil
}
