package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTService_GenerateToken(t *testing.T) {
	service := NewJWTService("test-secret-key", 24)

	userID := uuid.New()
	token, err := service.GenerateToken(userID, "test@example.com")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if token == "" {
		t.Fatal("Expected token to be generated")
	}
}

func TestJWTService_GenerateToken_Unique(t *testing.T) {
	service := NewJWTService("test-secret-key", 24)

	a, err := service.GenerateToken(uuid.New(), "a@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	b, err := service.GenerateToken(uuid.New(), "b@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if a == b {
		t.Fatal("Expected distinct tokens for distinct users")
	}
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := NewJWTService("test-secret-key", 24)

	userID := uuid.New()
	token, err := service.GenerateToken(userID, "test@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("Expected userID %s, got %s", userID.String(), claims.UserID.String())
	}

	if claims.Email != "test@example.com" {
		t.Errorf("Expected email test@example.com, got %s", claims.Email)
	}
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	service := NewJWTService("test-secret-key", 24)

	_, err := service.ValidateToken("invalid.token.here")
	if err == nil {
		t.Fatal("Expected error for invalid token")
	}
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("test-secret-key", 24)
	verifier := NewJWTService("another-secret-key", 24)

	token, err := issuer.GenerateToken(uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("Expected error for token signed with a different secret")
	}
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := NewJWTService("test-secret-key", -1) // Expired token

	token, err := service.GenerateToken(uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	// Wait a moment to ensure expiry
	time.Sleep(time.Millisecond * 100)

	if _, err := service.ValidateToken(token); err == nil {
		t.Fatal("Expected error for expired token")
	}
}
