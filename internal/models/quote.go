package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quote kinds
const (
	QuoteKindQuote   = "quote"
	QuoteKindMessage = "message"
)

// Quote is a quote or message the client can browse, share and download.
type Quote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Category  string             `bson:"category" json:"category"`
	Text      string             `bson:"text" json:"text"`
	Author    string             `bson:"author,omitempty" json:"author,omitempty"`
	Kind      string             `bson:"kind" json:"kind"`
	Likes     int                `bson:"likes" json:"likes"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Favorite links a user to a quote they saved.
type Favorite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	QuoteID   primitive.ObjectID `bson:"quoteId" json:"quoteId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
