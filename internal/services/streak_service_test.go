package services

import (
	"context"
	"testing"
	"time"

	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type streakFixture struct {
	svc     *StreakServiceImpl
	rewards *memory.RewardRepository
	users   *memory.UserRepository
	userID  primitive.ObjectID
}

func newStreakFixture(t *testing.T) *streakFixture {
	t.Helper()
	users := memory.NewUserRepository()
	rewards := memory.NewRewardRepository()
	userID := primitive.NewObjectID()
	require.NoError(t, users.Create(context.Background(), &models.User{ID: userID, Email: "streak@example.com"}))

	svc := NewStreakService(memory.NewStreakRepository(), rewards, users, testCheckinConfig(), zap.NewNop())
	return &streakFixture{svc: svc, rewards: rewards, users: users, userID: userID}
}

// day returns consecutive January/February 2025 day keys starting at Jan 1.
func day(n int) string {
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
	return d.Format("2006-01-02")
}

func TestFirstCompletionStartsStreakAtOne(t *testing.T) {
	f := newStreakFixture(t)

	streak, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(1))
	require.NoError(t, err)

	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
	assert.Equal(t, 1, streak.TotalDays)
	assert.Equal(t, day(1), streak.LastCheckinDate)
}

func TestConsecutiveDayAdvancesStreak(t *testing.T) {
	f := newStreakFixture(t)

	_, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(1))
	require.NoError(t, err)

	streak, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(2))
	require.NoError(t, err)

	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 2, streak.TotalDays)
}

func TestGapResetsStreak(t *testing.T) {
	f := newStreakFixture(t)

	for n := 1; n <= 3; n++ {
		_, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(n))
		require.NoError(t, err)
	}

	// Skip day 4 entirely.
	streak, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(5))
	require.NoError(t, err)

	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 3, streak.LongestStreak)
	assert.Equal(t, 4, streak.TotalDays)
}

func TestSameDayIsIdempotent(t *testing.T) {
	f := newStreakFixture(t)

	first, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(1))
	require.NoError(t, err)

	second, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(1))
	require.NoError(t, err)

	assert.Equal(t, first.CurrentStreak, second.CurrentStreak)
	assert.Equal(t, first.TotalDays, second.TotalDays)
	assert.Equal(t, first.LongestStreak, second.LongestStreak)
}

func TestMonthBoundaryIsConsecutive(t *testing.T) {
	f := newStreakFixture(t)

	_, err := f.svc.OnDayCompleted(context.Background(), f.userID, "2025-01-31")
	require.NoError(t, err)

	streak, err := f.svc.OnDayCompleted(context.Background(), f.userID, "2025-02-01")
	require.NoError(t, err)

	assert.Equal(t, 2, streak.CurrentStreak)
}

func TestMilestoneRewardEdgeTriggered(t *testing.T) {
	f := newStreakFixture(t)

	for n := 1; n <= 29; n++ {
		_, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(n))
		require.NoError(t, err)
	}

	rewards, err := f.rewards.FindByUser(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Empty(t, rewards, "no reward before the milestone")

	// Day 30 crosses the milestone.
	streak, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(30))
	require.NoError(t, err)
	require.Equal(t, 30, streak.CurrentStreak)

	rewards, err = f.rewards.FindByUser(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, 500, rewards[0].Amount)
	assert.Equal(t, models.RewardStatusPending, rewards[0].Status)
	assert.Equal(t, models.RewardSourceStreak, rewards[0].Source)
	assert.Equal(t, 30, rewards[0].CheckInCount)
	assert.Empty(t, rewards[0].Phone)

	// Days 31 and 32 must not mint again.
	for n := 31; n <= 32; n++ {
		_, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(n))
		require.NoError(t, err)
	}
	rewards, err = f.rewards.FindByUser(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestGapAfterMilestoneNoSecondReward(t *testing.T) {
	f := newStreakFixture(t)

	for n := 1; n <= 30; n++ {
		_, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(n))
		require.NoError(t, err)
	}

	// Skip day 31, complete day 32: streak resets, reward count unchanged.
	streak, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(32))
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 30, streak.LongestStreak)

	rewards, err := f.rewards.FindByUser(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestReferralRewardOnFirstCompletedDay(t *testing.T) {
	f := newStreakFixture(t)

	referrer := &models.User{ID: primitive.NewObjectID(), Email: "referrer@example.com"}
	require.NoError(t, f.users.Create(context.Background(), referrer))

	referred := &models.User{
		ID:         primitive.NewObjectID(),
		Email:      "referred@example.com",
		ReferredBy: referrer.ID,
	}
	require.NoError(t, f.users.Create(context.Background(), referred))

	_, err := f.svc.OnDayCompleted(context.Background(), referred.ID, day(1))
	require.NoError(t, err)

	rewards, err := f.rewards.FindByUser(context.Background(), referrer.ID)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, 100, rewards[0].Amount)
	assert.Equal(t, models.RewardSourceReferral, rewards[0].Source)

	// Second completed day does not credit the referrer again.
	_, err = f.svc.OnDayCompleted(context.Background(), referred.ID, day(2))
	require.NoError(t, err)

	rewards, err = f.rewards.FindByUser(context.Background(), referrer.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestLongestStreakTracksHistoricalMax(t *testing.T) {
	f := newStreakFixture(t)

	for n := 1; n <= 5; n++ {
		_, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(n))
		require.NoError(t, err)
	}
	// Break and restart a shorter run.
	for n := 7; n <= 8; n++ {
		_, err := f.svc.OnDayCompleted(context.Background(), f.userID, day(n))
		require.NoError(t, err)
	}

	streak, err := f.svc.Get(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 5, streak.LongestStreak)
	assert.Equal(t, 7, streak.TotalDays)
}
