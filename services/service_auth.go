package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/repository"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/model"
)

const tokenTTL = 7 * 24 * time.Hour

// Register creates a user with a bcrypt-hashed password and returns a signed
// bearer token for the new identity.
func Register(ctx context.Context, users *repository.UserRepository, secret, username, email, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateRegistration(username, email, password); err != nil {
		return nil, "", err
	}

	// Pre-checks give specific messages; the unique indexes still back them
	// up when two registrations race.
	if existing, err := users.FindByUsername(ctx, username); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", ErrUsernameTaken
	}
	if existing, err := users.FindByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:  username,
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now().UTC(),
	}
	dup, err := users.Insert(ctx, user)
	if err != nil {
		return nil, "", err
	}
	if dup {
		return nil, "", ErrUsernameTaken
	}

	token, err := IssueToken(secret, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a fresh token.
func Login(ctx context.Context, users *repository.UserRepository, secret, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", validationError("email and password are required")
	}

	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := IssueToken(secret, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken signs an HS256 bearer token with the user id as subject.
func IssueToken(secret string, uid bson.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uid.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

func validateRegistration(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return validationError("username, email and password are required")
	}
	if len(username) < 3 || len(username) > 30 {
		return validationError("username must be between 3 and 30 characters")
	}
	if !strings.Contains(email, "@") {
		return validationError("invalid email address")
	}
	if len(password) < 6 {
		return validationError("password must be at least 6 characters")
	}
	return nil
}
