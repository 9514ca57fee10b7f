package services

import (
	"context"
	"errors"
	"testing"

	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories/memory"
	"github.com/legitflash/boomquotes-backend/pkg/reloadly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubGateway struct {
	result    *reloadly.TopupResult
	err       error
	calls     int
	lastPhone string
	lastISO   string
}

func (g *stubGateway) SendTopup(_ context.Context, phone, countryISO string, _ float64) (*reloadly.TopupResult, error) {
	g.calls++
	g.lastPhone = phone
	g.lastISO = countryISO
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

type rewardFixture struct {
	svc     *RewardServiceImpl
	rewards *memory.RewardRepository
	users   *memory.UserRepository
	gateway *stubGateway
	userID  primitive.ObjectID
}

func newRewardFixture(t *testing.T, phone string) *rewardFixture {
	t.Helper()
	users := memory.NewUserRepository()
	rewards := memory.NewRewardRepository()
	gateway := &stubGateway{result: &reloadly.TopupResult{
		TransactionID:   "TX-1",
		OperatorName:    "MTN",
		DeliveredAmount: 500,
		Currency:        "NGN",
	}}

	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "reward@example.com",
		Phone: phone,
	}
	require.NoError(t, users.Create(context.Background(), user))

	return &rewardFixture{
		svc:     NewRewardService(rewards, users, gateway, zap.NewNop()),
		rewards: rewards,
		users:   users,
		gateway: gateway,
		userID:  user.ID,
	}
}

func (f *rewardFixture) addPendingReward(t *testing.T, amount int) *models.AirtimeReward {
	t.Helper()
	reward := &models.AirtimeReward{
		UserID:       f.userID,
		Amount:       amount,
		Status:       models.RewardStatusPending,
		Source:       models.RewardSourceStreak,
		CheckInCount: 30,
	}
	require.NoError(t, f.rewards.Create(context.Background(), reward))
	return reward
}

func TestRedeemWithoutPhoneRejectedBeforeGatewayCall(t *testing.T) {
	f := newRewardFixture(t, "")
	f.addPendingReward(t, 500)

	_, err := f.svc.Redeem(context.Background(), f.userID)
	assert.ErrorIs(t, err, ErrPhoneRequired)
	assert.Zero(t, f.gateway.calls)

	// The reward is untouched.
	rewards, err := f.rewards.FindByUser(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, models.RewardStatusPending, rewards[0].Status)
}

func TestRedeemNoPendingReward(t *testing.T) {
	f := newRewardFixture(t, "+2348012345678")

	_, err := f.svc.Redeem(context.Background(), f.userID)
	assert.ErrorIs(t, err, ErrNoPendingReward)
}

func TestRedeemSuccess(t *testing.T) {
	f := newRewardFixture(t, "+2348012345678")
	f.addPendingReward(t, 500)

	reward, err := f.svc.Redeem(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, models.RewardStatusSent, reward.Status)
	assert.Equal(t, "TX-1", reward.TransactionRef)
	assert.Equal(t, "+2348012345678", reward.Phone)
	assert.Equal(t, 1, f.gateway.calls)
	assert.Equal(t, "NG", f.gateway.lastISO)
}

func TestRedeemGatewayFailureRecordedOnReward(t *testing.T) {
	f := newRewardFixture(t, "+2348012345678")
	f.addPendingReward(t, 500)
	f.gateway.err = errors.New("operator unavailable")

	reward, err := f.svc.Redeem(context.Background(), f.userID)
	require.NoError(t, err, "payout failure is recorded, not raised")

	assert.Equal(t, models.RewardStatusFailed, reward.Status)
	assert.Equal(t, "operator unavailable", reward.FailureReason)
}

func TestRedeemPicksOldestPending(t *testing.T) {
	f := newRewardFixture(t, "+2348012345678")
	first := f.addPendingReward(t, 500)
	f.addPendingReward(t, 100)

	reward, err := f.svc.Redeem(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, reward.ID)
}

func TestRetryFailedReward(t *testing.T) {
	f := newRewardFixture(t, "+2348012345678")
	f.addPendingReward(t, 500)
	f.gateway.err = errors.New("operator unavailable")

	reward, err := f.svc.Redeem(context.Background(), f.userID)
	require.NoError(t, err)
	require.Equal(t, models.RewardStatusFailed, reward.Status)

	// Provider recovers; user hits retry.
	f.gateway.err = nil
	retried, err := f.svc.Retry(context.Background(), f.userID, reward.ID)
	require.NoError(t, err)

	assert.Equal(t, models.RewardStatusSent, retried.Status)
	assert.Empty(t, retried.FailureReason)
	assert.Equal(t, "TX-1", retried.TransactionRef)
}

func TestRetryOnlyFailedRewards(t *testing.T) {
	f := newRewardFixture(t, "+2348012345678")
	pending := f.addPendingReward(t, 500)

	_, err := f.svc.Retry(context.Background(), f.userID, pending.ID)
	assert.ErrorIs(t, err, ErrRewardNotRetryable)
}

func TestRetryOtherUsersRewardNotFound(t *testing.T) {
	f := newRewardFixture(t, "+2348012345678")
	reward := f.addPendingReward(t, 500)

	stranger := primitive.NewObjectID()
	_, err := f.svc.Retry(context.Background(), stranger, reward.ID)
	assert.ErrorIs(t, err, ErrRewardNotFound)
}

func TestListNewestFirst(t *testing.T) {
	f := newRewardFixture(t, "+2348012345678")
	older := f.addPendingReward(t, 500)
	newer := f.addPendingReward(t, 100)

	rewards, err := f.svc.List(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, rewards, 2)
	assert.Equal(t, newer.ID, rewards[0].ID)
	assert.Equal(t, older.ID, rewards[1].ID)
}
