package services

import (
	"strings"
	"testing"

	"stayverse/errors"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "round-trip-secret")

	signed, err := GenerateToken(42, 1)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	userID, role, err := GetUserIDFromToken(signed)
	if err != nil {
		t.Fatalf("GetUserIDFromToken() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
	if role != 1 {
		t.Errorf("role = %d, want 1", role)
	}
}

func TestTokenRejectsForeignKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "original-secret")
	signed, err := GenerateToken(7, 0)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	t.Setenv("JWT_SECRET", "rotated-secret")
	if _, _, err := GetUserIDFromToken(signed); err == nil {
		t.Fatal("GetUserIDFromToken() accepted a token signed with a different key")
	}
}

func TestTokenRejectsTamperedPayload(t *testing.T) {
	t.Setenv("JWT_SECRET", "tamper-secret")
	signed, err := GenerateToken(7, 0)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	other, err := GenerateToken(99, 1)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	tampered := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

	_, _, err = GetUserIDFromToken(tampered)
	if err == nil {
		t.Fatal("GetUserIDFromToken() accepted a token with a swapped payload")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("error = %v, want AppError", err)
	}
	if appErr.Code != errors.ErrCodeInvalidToken {
		t.Errorf("Code = %q, want %q", appErr.Code, errors.ErrCodeInvalidToken)
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "garbage-secret")
	if _, _, err := GetUserIDFromToken("not-a-token"); err == nil {
		t.Fatal("GetUserIDFromToken() accepted a malformed token")
	}
}

func TestGetIDFromToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "id-only-secret")
	signed, err := GenerateToken(17, 0)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	userID, err := GetIDFromToken(signed)
	if err != nil {
		t.Fatalf("GetIDFromToken() error = %v", err)
	}
	if userID != 17 {
		t.Errorf("userID = %d, want 17", userID)
	}
}
