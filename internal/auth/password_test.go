package auth

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "mySecurePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if hash == "" {
		t.Fatal("Expected hash to be generated")
	}

	if hash == password {
		t.Fatal("Hash should not equal plain password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	password := "mySecurePassword123"

	first, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if first == second {
		t.Fatal("Expected different digests for the same password")
	}

	if err := CheckPassword(first, password); err != nil {
		t.Errorf("Expected first digest to verify, got error: %v", err)
	}
	if err := CheckPassword(second, password); err != nil {
		t.Errorf("Expected second digest to verify, got error: %v", err)
	}
}

func TestCheckPassword_Valid(t *testing.T) {
	password := "mySecurePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if err := CheckPassword(hash, password); err != nil {
		t.Errorf("Expected password to match, got error: %v", err)
	}
}

func TestCheckPassword_Invalid(t *testing.T) {
	hash, err := HashPassword("mySecurePassword123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if err := CheckPassword(hash, "wrongPassword"); err == nil {
		t.Error("Expected error for wrong password")
	}
}

func TestHashPassword_EmptyString(t *testing.T) {
	hash, err := HashPassword("")
	if err != nil {
		t.Fatalf("Expected no error for empty password, got %v", err)
	}

	if hash == "" {
		t.Fatal("Expected hash to be generated even for empty password")
	}
}
