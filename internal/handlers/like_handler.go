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

// ToggleLikeHandler godoc
// @Summary      Toggle like on a post
// @Description  Adds the like when absent, removes it when present
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  dto.LikeEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/{id}/like [put]
func ToggleLikeHandler(db *mongo.Database) fiber.Handler {
	posts := repository.NewPostRepository(db)
	return func(c *fiber.Ctx) error {
		uid, ok := authctx.UserIDFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
		}

		postID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		post, liked, err := services.ToggleLike(ctx, posts, uid, postID)
		if err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Post not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Server error while liking post"})
		}

		message := "Post unliked"
		if liked {
			message = "Post liked"
		}
		return c.JSON(dto.LikeEnvelope{
			Message:    message,
			Post:       *post,
			LikesCount: len(post.Likes),
		})
	}
}
