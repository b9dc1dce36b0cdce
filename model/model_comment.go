package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment is embedded in its post and has no identity of its own.
// Username is a snapshot taken when the comment is written, so the display
// name survives later renames of the author.
type Comment struct {
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Username  string        `json:"username"  bson:"username"`
	Text      string        `json:"text"      bson:"text"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
