package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/legitflash/boomquotes-backend/internal/config"
	"github.com/legitflash/boomquotes-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testCheckinConfig() config.CheckinConfig {
	return config.CheckinConfig{
		ButtonsPerDay:   10,
		CooldownSeconds: 60,
		StreakMilestone: 30,
		RewardAmount:    500,
		ReferralAmount:  100,
	}
}

type checkinFixture struct {
	svc     *CheckinServiceImpl
	streaks *StreakServiceImpl
	rewards *memory.RewardRepository
	users   *memory.UserRepository
	clock   *fakeClock
	userID  primitive.ObjectID
}

func newCheckinFixture(t *testing.T) *checkinFixture {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)}
	cfg := testCheckinConfig()
	users := memory.NewUserRepository()
	rewards := memory.NewRewardRepository()
	streaks := NewStreakService(memory.NewStreakRepository(), rewards, users, cfg, zap.NewNop()).WithClock(clock.Now)
	svc := NewCheckinService(memory.NewCheckinRepository(), streaks, cfg, zap.NewNop()).WithClock(clock.Now)
	return &checkinFixture{
		svc:     svc,
		streaks: streaks,
		rewards: rewards,
		users:   users,
		clock:   clock,
		userID:  primitive.NewObjectID(),
	}
}

// completeDay clicks all ten buttons in order, advancing past each cooldown.
func (f *checkinFixture) completeDay(t *testing.T) {
	t.Helper()
	for n := 1; n <= 10; n++ {
		_, err := f.svc.HandleButtonClick(context.Background(), f.userID, n)
		require.NoError(t, err, "button %d", n)
		f.clock.Advance(61 * time.Second)
	}
}

func TestFirstClickCreatesCheckin(t *testing.T) {
	f := newCheckinFixture(t)

	result, err := f.svc.HandleButtonClick(context.Background(), f.userID, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Checkin.ClickCount)
	assert.Len(t, result.Checkin.ButtonClicks, 1)
	assert.False(t, result.Checkin.Completed)
	assert.Equal(t, 1, result.Checkin.AdsShown)
	assert.Equal(t, 1, result.ButtonClick.ButtonNumber)
	assert.True(t, result.ButtonClick.AdShown)
	assert.Equal(t, f.clock.Now().Add(60*time.Second), result.ButtonClick.CooldownUntil)
}

func TestButtonNumberOutOfRange(t *testing.T) {
	f := newCheckinFixture(t)

	for _, n := range []int{0, -1, 11, 100} {
		_, err := f.svc.HandleButtonClick(context.Background(), f.userID, n)
		assert.ErrorIs(t, err, ErrInvalidButtonNumber, "button %d", n)
	}
}

func TestSequentialGating(t *testing.T) {
	f := newCheckinFixture(t)

	// Button 2 before button 1 was ever clicked.
	_, err := f.svc.HandleButtonClick(context.Background(), f.userID, 2)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.HandleButtonClick(context.Background(), f.userID, 1)
	require.NoError(t, err)

	// Button 2 while button 1 is still cooling down.
	f.clock.Advance(10 * time.Second)
	_, err = f.svc.HandleButtonClick(context.Background(), f.userID, 2)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Cooldown elapsed, button 2 is now clickable.
	f.clock.Advance(51 * time.Second)
	result, err := f.svc.HandleButtonClick(context.Background(), f.userID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Checkin.ClickCount)

	// Skipping ahead is still rejected.
	f.clock.Advance(61 * time.Second)
	_, err = f.svc.HandleButtonClick(context.Background(), f.userID, 5)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSameButtonCooldown(t *testing.T) {
	f := newCheckinFixture(t)

	_, err := f.svc.HandleButtonClick(context.Background(), f.userID, 1)
	require.NoError(t, err)

	f.clock.Advance(10 * time.Second)
	_, err = f.svc.HandleButtonClick(context.Background(), f.userID, 1)

	var cooldown *CooldownError
	require.True(t, errors.As(err, &cooldown))
	assert.Equal(t, 50, cooldown.RemainingSeconds)
}

func TestReclickAfterCooldownOverwrites(t *testing.T) {
	f := newCheckinFixture(t)

	first, err := f.svc.HandleButtonClick(context.Background(), f.userID, 1)
	require.NoError(t, err)

	f.clock.Advance(61 * time.Second)
	second, err := f.svc.HandleButtonClick(context.Background(), f.userID, 1)
	require.NoError(t, err)

	// The entry is replaced in place: no progress, but another ad impression.
	assert.Equal(t, 1, second.Checkin.ClickCount)
	assert.Len(t, second.Checkin.ButtonClicks, 1)
	assert.Equal(t, 2, second.Checkin.AdsShown)
	assert.True(t, second.ButtonClick.ClickedAt.After(first.ButtonClick.ClickedAt))
}

func TestNoDuplicateButtonNumbers(t *testing.T) {
	f := newCheckinFixture(t)

	for n := 1; n <= 5; n++ {
		_, err := f.svc.HandleButtonClick(context.Background(), f.userID, n)
		require.NoError(t, err)
		f.clock.Advance(61 * time.Second)
	}
	// Re-click an earlier button, then continue.
	result, err := f.svc.HandleButtonClick(context.Background(), f.userID, 3)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, bc := range result.Checkin.ButtonClicks {
		assert.False(t, seen[bc.ButtonNumber], "duplicate button %d", bc.ButtonNumber)
		seen[bc.ButtonNumber] = true
	}
	assert.Equal(t, len(result.Checkin.ButtonClicks), result.Checkin.ClickCount)
}

func TestDayCompletion(t *testing.T) {
	f := newCheckinFixture(t)

	var completed bool
	for n := 1; n <= 10; n++ {
		result, err := f.svc.HandleButtonClick(context.Background(), f.userID, n)
		require.NoError(t, err)
		completed = result.Completed
		if n < 10 {
			assert.False(t, completed)
			f.clock.Advance(61 * time.Second)
		} else {
			assert.True(t, completed)
			assert.True(t, result.Checkin.Completed)
			require.NotNil(t, result.Checkin.CompletedAt)
			assert.Equal(t, f.clock.Now(), *result.Checkin.CompletedAt)
			require.NotNil(t, result.Streak)
			assert.Equal(t, 1, result.Streak.CurrentStreak)
		}
	}
}

func TestClicksAfterCompletionRejected(t *testing.T) {
	f := newCheckinFixture(t)
	f.completeDay(t)

	for _, n := range []int{10, 1, 5} {
		_, err := f.svc.HandleButtonClick(context.Background(), f.userID, n)
		assert.ErrorIs(t, err, ErrAlreadyCompleted, "button %d", n)
	}

	// The terminal guard also keeps the streak at one update for the day.
	streak, err := f.streaks.Get(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.TotalDays)
}

func TestNewDayStartsFresh(t *testing.T) {
	f := newCheckinFixture(t)
	f.completeDay(t)

	// Jump to the next UTC day.
	f.clock.t = time.Date(2025, 1, 16, 8, 0, 0, 0, time.UTC)

	result, err := f.svc.HandleButtonClick(context.Background(), f.userID, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-16", result.Checkin.Date)
	assert.Equal(t, 1, result.Checkin.ClickCount)
	assert.False(t, result.Checkin.Completed)
}

func TestGetToday(t *testing.T) {
	f := newCheckinFixture(t)

	status, err := f.svc.GetToday(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Nil(t, status.TodayCheckin)
	assert.True(t, status.CanCompleteToday)
	assert.Equal(t, 0, status.Streak.CurrentStreak)
	assert.Equal(t, 30, status.NextRewardAt)

	f.completeDay(t)

	status, err = f.svc.GetToday(context.Background(), f.userID)
	require.NoError(t, err)
	require.NotNil(t, status.TodayCheckin)
	assert.True(t, status.TodayCheckin.Completed)
	assert.False(t, status.CanCompleteToday)
	assert.Equal(t, 1, status.Streak.CurrentStreak)
	assert.Equal(t, 29, status.NextRewardAt)
}

func TestUsersAreIndependent(t *testing.T) {
	f := newCheckinFixture(t)
	other := primitive.NewObjectID()

	_, err := f.svc.HandleButtonClick(context.Background(), f.userID, 1)
	require.NoError(t, err)

	// The other user's day starts at button 1 regardless.
	result, err := f.svc.HandleButtonClick(context.Background(), other, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Checkin.ClickCount)

	_, err = f.svc.HandleButtonClick(context.Background(), other, 2)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
