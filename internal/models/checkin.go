package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ButtonClick records one accepted click on a check-in button. A button may be
// clicked again once its cooldown has expired; the entry is then overwritten
// in place.
type ButtonClick struct {
	ButtonNumber  int       `bson:"buttonNumber" json:"buttonNumber"`
	ClickedAt     time.Time `bson:"clickedAt" json:"clickedAt"`
	AdShown       bool      `bson:"adShown" json:"adShown"`
	CooldownUntil time.Time `bson:"cooldownUntil" json:"cooldownUntil"`
}

// CheckIn is one user's check-in record for a single calendar day. Date is a
// UTC YYYY-MM-DD string and, together with UserID, is the natural key.
type CheckIn struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Date         string             `bson:"date" json:"date"`
	ButtonClicks []ButtonClick      `bson:"buttonClicks" json:"buttonClicks"`
	ClickCount   int                `bson:"clickCount" json:"clickCount"`
	Completed    bool               `bson:"completed" json:"completed"`
	CompletedAt  *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	AdsShown     int                `bson:"adsShown" json:"adsShown"`
	LastClickAt  *time.Time         `bson:"lastClickAt,omitempty" json:"lastClickAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Click returns the recorded click for buttonNumber, or nil.
func (c *CheckIn) Click(buttonNumber int) *ButtonClick {
	for i := range c.ButtonClicks {
		if c.ButtonClicks[i].ButtonNumber == buttonNumber {
			return &c.ButtonClicks[i]
		}
	}
	return nil
}
