package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the system
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	CountryISO   string             `bson:"countryIso,omitempty" json:"countryIso,omitempty"`
	ReferralCode string             `bson:"referralCode" json:"referralCode"`
	ReferredBy   primitive.ObjectID `bson:"referredBy,omitempty" json:"referredBy,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
