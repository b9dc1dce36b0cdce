package services

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	uid := bson.NewObjectID()

	signed, err := IssueToken(secret, uid)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(signed, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != uid.Hex() {
		t.Fatalf("sub = %q, want %q", claims.Subject, uid.Hex())
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Fatalf("token should expire after issue time")
	}
}

func TestIssueTokenWrongSecret(t *testing.T) {
	signed, err := IssueToken("secret-a", bson.NewObjectID())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = jwt.Parse(signed, func(t *jwt.Token) (any, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Fatalf("token signed with another secret should not verify")
	}
}

func TestValidateRegistration(t *testing.T) {
	if err := validateRegistration("alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("valid registration rejected: %v", err)
	}

	var ve *ValidationError
	cases := []struct {
		name                      string
		username, email, password string
	}{
		{"missing fields", "", "", ""},
		{"short username", "ab", "a@b.com", "hunter22"},
		{"bad email", "alice", "not-an-email", "hunter22"},
		{"short password", "alice", "a@b.com", "12345"},
	}
	for _, c := range cases {
		if err := validateRegistration(c.username, c.email, c.password); !errors.As(err, &ve) {
			t.Fatalf("%s: expected validation error, got %v", c.name, err)
		}
	}
}
