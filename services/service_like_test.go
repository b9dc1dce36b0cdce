package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/model"
)

// fakeLikeStore keeps the repository's update semantics: the pull only
// matches while uid is present, the add never stores a duplicate.
type fakeLikeStore struct {
	posts map[bson.ObjectID]*model.FeedPost
}

func (f *fakeLikeStore) PullLike(_ context.Context, postID, uid bson.ObjectID) (bool, error) {
	p, ok := f.posts[postID]
	if !ok {
		return false, nil
	}
	for i, id := range p.Likes {
		if id == uid {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLikeStore) AddLike(_ context.Context, postID, uid bson.ObjectID) (bool, error) {
	p, ok := f.posts[postID]
	if !ok {
		return false, nil
	}
	for _, id := range p.Likes {
		if id == uid {
			return true, nil
		}
	}
	p.Likes = append(p.Likes, uid)
	return true, nil
}

func (f *fakeLikeStore) GetFeedPost(_ context.Context, id bson.ObjectID) (*model.FeedPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Likes = append([]bson.ObjectID(nil), p.Likes...)
	return &cp, nil
}

func newFakeLikeStore() (*fakeLikeStore, bson.ObjectID) {
	postID := bson.NewObjectID()
	store := &fakeLikeStore{posts: map[bson.ObjectID]*model.FeedPost{
		postID: {Post: model.Post{ID: postID, Likes: []bson.ObjectID{}}},
	}}
	return store, postID
}

func TestToggleLikeRoundTrip(t *testing.T) {
	store, postID := newFakeLikeStore()
	uid := bson.NewObjectID()

	post, liked, err := ToggleLike(context.Background(), store, uid, postID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !liked {
		t.Fatalf("first toggle should add the like")
	}
	if len(post.Likes) != 1 || post.Likes[0] != uid {
		t.Fatalf("likes = %v, want [%s]", post.Likes, uid.Hex())
	}

	post, liked, err = ToggleLike(context.Background(), store, uid, postID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if liked {
		t.Fatalf("second toggle should remove the like")
	}
	if len(post.Likes) != 0 {
		t.Fatalf("toggle twice should restore the original likers set, got %v", post.Likes)
	}
}

func TestToggleLikeTwoUsers(t *testing.T) {
	store, postID := newFakeLikeStore()
	userA := bson.NewObjectID()
	userB := bson.NewObjectID()

	if _, _, err := ToggleLike(context.Background(), store, userA, postID); err != nil {
		t.Fatalf("userA like: %v", err)
	}
	post, _, err := ToggleLike(context.Background(), store, userB, postID)
	if err != nil {
		t.Fatalf("userB like: %v", err)
	}
	if len(post.Likes) != 2 {
		t.Fatalf("likes = %v, want both users", post.Likes)
	}

	post, liked, err := ToggleLike(context.Background(), store, userA, postID)
	if err != nil {
		t.Fatalf("userA unlike: %v", err)
	}
	if liked {
		t.Fatalf("userA's second toggle should unlike")
	}
	if len(post.Likes) != 1 || post.Likes[0] != userB {
		t.Fatalf("userB's like should survive, got %v", post.Likes)
	}
}

func TestToggleLikeMissingPost(t *testing.T) {
	store, _ := newFakeLikeStore()

	_, _, err := ToggleLike(context.Background(), store, bson.NewObjectID(), bson.NewObjectID())
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("missing post should return ErrPostNotFound, got %v", err)
	}
}
