package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/configs"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/dto"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/authctx"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/repository"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/upload"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/services"
)

// CreatePostHandler godoc
// @Summary      Create a post
// @Description  Create a post from JSON {content, image} or multipart with a "media" file. At least one of content/media is required.
// @Tags         posts
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostDTO  true  "Post payload"
// @Success      201   {object}  dto.PostEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /posts [post]
func CreatePostHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	posts := repository.NewPostRepository(db)
	return func(c *fiber.Ctx) error {
		uid, ok := authctx.UserIDFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
		}

		content, image, err := extractPostInput(c, cfg.UploadDir)
		if err != nil {
			return writePostInputError(c, err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		post, err := services.CreatePost(ctx, posts, uid, content, image)
		if err != nil {
			var ve *services.ValidationError
			if errors.As(err, &ve) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ve.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Server error while creating post"})
		}

		return c.Status(fiber.StatusCreated).JSON(dto.PostEnvelope{
			Message: "Post created successfully",
			Post:    *post,
		})
	}
}

var errInvalidBody = errors.New("invalid body")

// extractPostInput reads content and media from either a multipart form or a
// JSON body. An uploaded file wins over an "image" URL in the body.
func extractPostInput(c *fiber.Ctx, uploadDir string) (content, image string, err error) {
	if fh, ferr := c.FormFile("media"); ferr == nil && fh != nil {
		url, serr := upload.SaveMedia(fh, uploadDir)
		if serr != nil {
			return "", "", serr
		}
		return c.FormValue("content"), url, nil
	}

	var body dto.CreatePostDTO
	if berr := c.BodyParser(&body); berr != nil {
		return "", "", errInvalidBody
	}
	return body.Content, body.Image, nil
}

// writePostInputError keeps the error split: only a malformed body or a
// rejected media type is the caller's fault. Storage failures while saving
// the upload stay opaque server errors.
func writePostInputError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errInvalidBody) || errors.Is(err, upload.ErrUnsupportedType) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Server error while creating post"})
}
