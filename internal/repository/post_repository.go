package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/model"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// lookupAuthor resolves the author's username into each post document.
var lookupAuthor = []bson.M{
	{"$lookup": bson.M{
		"from":         "users",
		"localField":   "user_id",
		"foreignField": "_id",
		"as":           "author",
	}},
	{"$unwind": bson.M{
		"path":                       "$author",
		"preserveNullAndEmptyArrays": true,
	}},
	{"$addFields": bson.M{"username": "$author.username"}},
	{"$project": bson.M{"author": 0}},
}

func (r *PostRepository) Insert(ctx context.Context, post *model.Post) error {
	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	post.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// ListPage returns one feed page, newest first. Equal timestamps fall back
// to _id order so the sort stays stable across pages.
func (r *PostRepository) ListPage(ctx context.Context, skip, limit int64) ([]model.FeedPost, error) {
	pipeline := []bson.M{
		{"$sort": bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
		{"$skip": skip},
		{"$limit": limit},
	}
	pipeline = append(pipeline, lookupAuthor...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]model.FeedPost, 0, int(limit))
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetFeedPost returns a single post with the author's username attached,
// or nil when no post matches.
func (r *PostRepository) GetFeedPost(ctx context.Context, id bson.ObjectID) (*model.FeedPost, error) {
	pipeline := []bson.M{{"$match": bson.M{"_id": id}}}
	pipeline = append(pipeline, lookupAuthor...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []model.FeedPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

// PullLike removes uid from the likes array. The filter doubles as the
// compare of a compare-and-swap: it only matches while uid is present, so
// two racing unlikes cannot both succeed.
func (r *PostRepository) PullLike(ctx context.Context, postID, uid bson.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID, "likes": uid},
		bson.M{"$pull": bson.M{"likes": uid}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// AddLike adds uid to the likes array. $addToSet keeps the no-duplicate
// invariant even when two likes race. Returns found=false when the post
// does not exist.
func (r *PostRepository) AddLike(ctx context.Context, postID, uid bson.ObjectID) (found bool, err error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"likes": uid}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// PushComment appends a comment to the post's embedded sequence. Existing
// comments are never touched. Returns found=false when the post is missing.
func (r *PostRepository) PushComment(ctx context.Context, postID bson.ObjectID, comment model.Comment) (found bool, err error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// NewComment builds an embedded comment with the username snapshot taken now.
func NewComment(uid bson.ObjectID, username, text string) model.Comment {
	return model.Comment{
		UserID:    uid,
		Username:  username,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
