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
	"github.com/jayakrishnatangudu/Mini-Social-Platform/services"
)

// RegisterHandler godoc
// @Summary      Register a new user
// @Description  Create an account and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.RegisterReq  true  "Registration payload"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func RegisterHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	users := repository.NewUserRepository(db)
	return func(c *fiber.Ctx) error {
		var body dto.RegisterReq
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, token, err := services.Register(ctx, users, cfg.JWTSecret, body.Username, body.Email, body.Password)
		if err != nil {
			return writeAuthError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
			Message: "User registered successfully",
			Token:   token,
			User:    *user,
		})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginReq  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func LoginHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	users := repository.NewUserRepository(db)
	return func(c *fiber.Ctx) error {
		var body dto.LoginReq
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, token, err := services.Login(ctx, users, cfg.JWTSecret, body.Email, body.Password)
		if err != nil {
			return writeAuthError(c, err)
		}

		return c.JSON(dto.AuthResponse{
			Message: "Login successful",
			Token:   token,
			User:    *user,
		})
	}
}

// MeHandler godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.User
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func MeHandler(db *mongo.Database) fiber.Handler {
	users := repository.NewUserRepository(db)
	return func(c *fiber.Ctx) error {
		uid, ok := authctx.UserIDFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
		}

		user, err := users.FindByID(c.Context(), uid)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Server error"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "user not found"})
		}
		return c.JSON(user)
	}
}

func writeAuthError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ve.Error()})
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Server error"})
	}
}
