// Package memory provides in-process implementations of the repository
// interfaces. They back unit tests and local development without a MongoDB
// instance. All methods copy records on the way in and out so callers never
// share memory with the store.
package memory

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time checks
var (
	_ repositories.UserRepository     = (*UserRepository)(nil)
	_ repositories.CheckinRepository  = (*CheckinRepository)(nil)
	_ repositories.StreakRepository   = (*StreakRepository)(nil)
	_ repositories.RewardRepository   = (*RewardRepository)(nil)
	_ repositories.QuoteRepository    = (*QuoteRepository)(nil)
	_ repositories.FavoriteRepository = (*FavoriteRepository)(nil)
)

// UserRepository is an in-memory user store
type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

// NewUserRepository creates an empty in-memory user store
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepository) FindByReferralCode(_ context.Context, code string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ReferralCode == code {
			u := u
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

// CheckinRepository is an in-memory check-in store keyed by (userId, date)
type CheckinRepository struct {
	mu       sync.RWMutex
	checkins map[string]models.CheckIn
}

// NewCheckinRepository creates an empty in-memory check-in store
func NewCheckinRepository() *CheckinRepository {
	return &CheckinRepository{checkins: make(map[string]models.CheckIn)}
}

func checkinKey(userID primitive.ObjectID, date string) string {
	return userID.Hex() + "|" + date
}

func copyCheckin(c models.CheckIn) models.CheckIn {
	clicks := make([]models.ButtonClick, len(c.ButtonClicks))
	copy(clicks, c.ButtonClicks)
	c.ButtonClicks = clicks
	return c
}

func (r *CheckinRepository) FindByUserAndDate(_ context.Context, userID primitive.ObjectID, date string) (*models.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.checkins[checkinKey(userID, date)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	c = copyCheckin(c)
	return &c, nil
}

func (r *CheckinRepository) Upsert(_ context.Context, checkin *models.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if checkin.ID.IsZero() {
		checkin.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if checkin.CreatedAt.IsZero() {
		checkin.CreatedAt = now
	}
	checkin.UpdatedAt = now
	r.checkins[checkinKey(checkin.UserID, checkin.Date)] = copyCheckin(*checkin)
	return nil
}

func (r *CheckinRepository) FindByUser(_ context.Context, userID primitive.ObjectID, limit int) ([]*models.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.CheckIn
	for _, c := range r.checkins {
		if c.UserID == userID {
			c := copyCheckin(c)
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// StreakRepository is an in-memory streak store keyed by userId
type StreakRepository struct {
	mu      sync.RWMutex
	streaks map[primitive.ObjectID]models.CheckinStreak
}

// NewStreakRepository creates an empty in-memory streak store
func NewStreakRepository() *StreakRepository {
	return &StreakRepository{streaks: make(map[primitive.ObjectID]models.CheckinStreak)}
}

func (r *StreakRepository) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.CheckinStreak, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.streaks[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (r *StreakRepository) Upsert(_ context.Context, streak *models.CheckinStreak) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if streak.ID.IsZero() {
		streak.ID = primitive.NewObjectID()
	}
	streak.UpdatedAt = time.Now()
	r.streaks[streak.UserID] = *streak
	return nil
}

// RewardRepository is an in-memory reward store
type RewardRepository struct {
	mu      sync.RWMutex
	rewards map[primitive.ObjectID]models.AirtimeReward
	order   []primitive.ObjectID
}

// NewRewardRepository creates an empty in-memory reward store
func NewRewardRepository() *RewardRepository {
	return &RewardRepository{rewards: make(map[primitive.ObjectID]models.AirtimeReward)}
}

func (r *RewardRepository) Create(_ context.Context, reward *models.AirtimeReward) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reward.ID.IsZero() {
		reward.ID = primitive.NewObjectID()
	}
	reward.CreatedAt = time.Now()
	reward.UpdatedAt = time.Now()
	r.rewards[reward.ID] = *reward
	r.order = append(r.order, reward.ID)
	return nil
}

func (r *RewardRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.AirtimeReward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rw, ok := r.rewards[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &rw, nil
}

func (r *RewardRepository) FindByUser(_ context.Context, userID primitive.ObjectID) ([]*models.AirtimeReward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.AirtimeReward
	// order holds insertion order; walk it backwards for newest-first
	for i := len(r.order) - 1; i >= 0; i-- {
		rw, ok := r.rewards[r.order[i]]
		if ok && rw.UserID == userID {
			rw := rw
			out = append(out, &rw)
		}
	}
	return out, nil
}

func (r *RewardRepository) FindOldestPending(_ context.Context, userID primitive.ObjectID) (*models.AirtimeReward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		rw, ok := r.rewards[id]
		if ok && rw.UserID == userID && rw.Status == models.RewardStatusPending {
			rw := rw
			return &rw, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *RewardRepository) Update(_ context.Context, reward *models.AirtimeReward) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rewards[reward.ID]; !ok {
		return repositories.ErrNotFound
	}
	reward.UpdatedAt = time.Now()
	r.rewards[reward.ID] = *reward
	return nil
}

// QuoteRepository is an in-memory quote store
type QuoteRepository struct {
	mu     sync.RWMutex
	quotes []models.Quote
}

// NewQuoteRepository creates an empty in-memory quote store
func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

func (r *QuoteRepository) CreateMany(_ context.Context, quotes []*models.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range quotes {
		if q.ID.IsZero() {
			q.ID = primitive.NewObjectID()
		}
		q.CreatedAt = time.Now()
		r.quotes = append(r.quotes, *q)
	}
	return nil
}

func (r *QuoteRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.quotes {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *QuoteRepository) FindByCategory(_ context.Context, category string, page, limit int) ([]*models.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*models.Quote
	for i := range r.quotes {
		if category == "" || r.quotes[i].Category == category {
			q := r.quotes[i]
			matched = append(matched, &q)
		}
	}
	start := (page - 1) * limit
	if start >= len(matched) {
		return nil, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *QuoteRepository) FindRandom(_ context.Context, category string) (*models.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []models.Quote
	for _, q := range r.quotes {
		if category == "" || q.Category == category {
			matched = append(matched, q)
		}
	}
	if len(matched) == 0 {
		return nil, repositories.ErrNotFound
	}
	q := matched[rand.Intn(len(matched))]
	return &q, nil
}

func (r *QuoteRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.quotes)), nil
}

// FavoriteRepository is an in-memory favorite store
type FavoriteRepository struct {
	mu        sync.RWMutex
	favorites []models.Favorite
}

// NewFavoriteRepository creates an empty in-memory favorite store
func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{}
}

func (r *FavoriteRepository) Create(_ context.Context, favorite *models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.favorites {
		if f.UserID == favorite.UserID && f.QuoteID == favorite.QuoteID {
			return nil
		}
	}
	if favorite.ID.IsZero() {
		favorite.ID = primitive.NewObjectID()
	}
	favorite.CreatedAt = time.Now()
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r *FavoriteRepository) Delete(_ context.Context, userID, quoteID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.favorites {
		if f.UserID == userID && f.QuoteID == quoteID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *FavoriteRepository) FindByUser(_ context.Context, userID primitive.ObjectID) ([]*models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Favorite
	for i := len(r.favorites) - 1; i >= 0; i-- {
		if r.favorites[i].UserID == userID {
			f := r.favorites[i]
			out = append(out, &f)
		}
	}
	return out, nil
}

func (r *FavoriteRepository) Exists(_ context.Context, userID, quoteID primitive.ObjectID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.favorites {
		if f.UserID == userID && f.QuoteID == quoteID {
			return true, nil
		}
	}
	return false, nil
}
