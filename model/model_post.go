package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post is the feed aggregate. Comments live inside the document and the
// likes array holds each liker at most once.
type Post struct {
	ID        bson.ObjectID   `json:"id"              bson:"_id,omitempty"`
	UserID    bson.ObjectID   `json:"userId"          bson:"user_id"`
	Content   string          `json:"content"         bson:"content"`
	Image     string          `json:"image,omitempty" bson:"image,omitempty"`
	Likes     []bson.ObjectID `json:"likes"           bson:"likes"`
	Comments  []Comment       `json:"comments"        bson:"comments"`
	CreatedAt time.Time       `json:"createdAt"       bson:"created_at"`
}

// FeedPost is a Post with the author's username resolved for display.
type FeedPost struct {
	Post     `bson:",inline"`
	Username string `json:"username" bson:"username"`
}
