package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/dto"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/authctx"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/repository"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/services"
)

// AddCommentHandler godoc
// @Summary      Comment on a post
// @Description  Appends a comment; the author's username is stored with it
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Post ID"
// @Param        data  body      dto.CreateCommentReq  true  "Comment payload"
// @Success      200   {object}  dto.CommentEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /posts/{id}/comment [post]
func AddCommentHandler(db *mongo.Database) fiber.Handler {
	posts := repository.NewPostRepository(db)
	users := repository.NewUserRepository(db)
	return func(c *fiber.Ctx) error {
		uid, ok := authctx.UserIDFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
		}

		postID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
		}

		var body dto.CreateCommentReq
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		post, count, err := services.AddComment(ctx, posts, users, uid, postID, body.Text)
		if err != nil {
			var ve *services.ValidationError
			switch {
			case errors.As(err, &ve):
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ve.Error()})
			case errors.Is(err, services.ErrPostNotFound):
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Post not found"})
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "User not found"})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Server error while adding comment"})
			}
		}

		return c.JSON(dto.CommentEnvelope{
			Message:       "Comment added successfully",
			Post:          *post,
			CommentsCount: count,
		})
	}
}
