package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/repository"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/model"
)

const maxCommentLen = 500

// AddComment appends a comment to the post's embedded sequence. The author's
// username is resolved once, here, and stored with the comment so the display
// name is preserved even if the user later renames.
func AddComment(ctx context.Context, posts *repository.PostRepository, users *repository.UserRepository, uid, postID bson.ObjectID, text string) (*model.FeedPost, int, error) {
	text, err := validateCommentText(text)
	if err != nil {
		return nil, 0, err
	}

	user, err := users.FindByID(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrUserNotFound
	}

	found, err := posts.PushComment(ctx, postID, repository.NewComment(uid, user.Username, text))
	if err != nil {
		return nil, 0, err
	}
	if !found {
		return nil, 0, ErrPostNotFound
	}

	post, err := posts.GetFeedPost(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	if post == nil {
		return nil, 0, ErrPostNotFound
	}
	return post, len(post.Comments), nil
}

// validateCommentText trims the text and enforces the 1..500 length rule.
func validateCommentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", validationError("Comment text is required")
	}
	if utf8.RuneCountInString(text) > maxCommentLen {
		return "", validationError("Comment cannot exceed 500 characters")
	}
	return text, nil
}
