package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckinStreak tracks a user's run of consecutive completed check-in days.
// TotalDays counts every completed day ever and is never reset.
type CheckinStreak struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	CurrentStreak   int                `bson:"currentStreak" json:"currentStreak"`
	LongestStreak   int                `bson:"longestStreak" json:"longestStreak"`
	LastCheckinDate string             `bson:"lastCheckinDate" json:"lastCheckinDate"`
	TotalDays       int                `bson:"totalDays" json:"totalDays"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
