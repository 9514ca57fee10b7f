package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reward statuses
const (
	RewardStatusPending    = "pending"
	RewardStatusProcessing = "processing"
	RewardStatusSent       = "sent"
	RewardStatusFailed     = "failed"
)

// Reward sources
const (
	RewardSourceStreak   = "streak"
	RewardSourceReferral = "referral"
)

// AirtimeReward is an airtime credit earned by a user, paid out through the
// top-up provider. Phone is empty until redemption time.
type AirtimeReward struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Amount         int                `bson:"amount" json:"amount"`
	Phone          string             `bson:"phone" json:"phone"`
	Status         string             `bson:"status" json:"status"`
	Source         string             `bson:"source" json:"source"`
	CheckInCount   int                `bson:"checkInCount" json:"checkInCount"`
	FailureReason  string             `bson:"failureReason,omitempty" json:"failureReason,omitempty"`
	TransactionRef string             `bson:"transactionRef,omitempty" json:"transactionRef,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
