package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/model"
)

// LikeStore is the slice of the post repository the toggle needs.
type LikeStore interface {
	PullLike(ctx context.Context, postID, uid bson.ObjectID) (bool, error)
	AddLike(ctx context.Context, postID, uid bson.ObjectID) (bool, error)
	GetFeedPost(ctx context.Context, id bson.ObjectID) (*model.FeedPost, error)
}

// ToggleLike flips uid's membership in the post's likes set and returns the
// updated post plus whether the call added the like.
//
// The toggle never reads-then-writes: the unlike is a $pull guarded by
// membership, the like a $addToSet, so each step is a single atomic document
// update and a duplicate like can never be stored.
func ToggleLike(ctx context.Context, posts LikeStore, uid, postID bson.ObjectID) (*model.FeedPost, bool, error) {
	pulled, err := posts.PullLike(ctx, postID, uid)
	if err != nil {
		return nil, false, err
	}

	liked := false
	if !pulled {
		found, err := posts.AddLike(ctx, postID, uid)
		if err != nil {
			return nil, false, err
		}
		if !found {
			return nil, false, ErrPostNotFound
		}
		liked = true
	}

	post, err := posts.GetFeedPost(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	if post == nil {
		return nil, false, ErrPostNotFound
	}
	return post, liked, nil
}
