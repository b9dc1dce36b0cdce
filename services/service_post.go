package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/repository"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/model"
)

const maxPostContentLen = 1000

// CreatePost validates and persists a new post for uid, then returns it with
// the author's username attached. The content-or-image rule is enforced here
// once, at creation, and never re-checked.
func CreatePost(ctx context.Context, posts *repository.PostRepository, uid bson.ObjectID, content, image string) (*model.FeedPost, error) {
	content = strings.TrimSpace(content)
	image = strings.TrimSpace(image)

	if err := validateNewPost(content, image); err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:    uid,
		Content:   content,
		Image:     image,
		Likes:     []bson.ObjectID{},
		Comments:  []model.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := posts.Insert(ctx, post); err != nil {
		return nil, err
	}

	created, err := posts.GetFeedPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.New("created post not found")
	}
	return created, nil
}

func validateNewPost(content, image string) error {
	if content == "" && image == "" {
		return validationError("Post must have either text content or image")
	}
	if utf8.RuneCountInString(content) > maxPostContentLen {
		return validationError("Post content cannot exceed 1000 characters")
	}
	return nil
}
