package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCommentText(t *testing.T) {
	got, err := validateCommentText("  nice post  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "nice post" {
		t.Fatalf("text should be trimmed, got %q", got)
	}
}

func TestValidateCommentTextEmpty(t *testing.T) {
	var ve *ValidationError
	if _, err := validateCommentText(""); !errors.As(err, &ve) {
		t.Fatalf("empty text should fail, got %v", err)
	}
	if _, err := validateCommentText("   \t\n "); !errors.As(err, &ve) {
		t.Fatalf("whitespace-only text should fail, got %v", err)
	}
}

func TestValidateCommentTextBoundary(t *testing.T) {
	if _, err := validateCommentText(strings.Repeat("a", 500)); err != nil {
		t.Fatalf("500 chars should be allowed: %v", err)
	}

	var ve *ValidationError
	if _, err := validateCommentText(strings.Repeat("a", 501)); !errors.As(err, &ve) {
		t.Fatalf("501 chars should fail, got %v", err)
	}

	if _, err := validateCommentText(strings.Repeat("ก", 500)); err != nil {
		t.Fatalf("500 multibyte chars should be allowed: %v", err)
	}
}
