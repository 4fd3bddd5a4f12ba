package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{
			name: "Valid user",
			user: User{
				Username: "testuser",
				Email:    "test@example.com",
			},
			wantErr: false,
		},
		{
			name: "Empty username",
			user: User{
				Username: "",
				Email:    "test@example.com",
			},
			wantErr: true,
		},
		{
			name: "Username too short",
			user: User{
				Username: "a",
				Email:    "test@example.com",
			},
			wantErr: true,
		},
		{
			name: "Username too long",
			user: User{
				Username: strings.Repeat("a", 101),
				Email:    "test@example.com",
			},
			wantErr: true,
		},
		{
			name: "Empty email",
			user: User{
				Username: "testuser",
				Email:    "",
			},
			wantErr: true,
		},
		{
			name: "Invalid email",
			user: User{
				Username: "testuser",
				Email:    "invalid-email",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("User.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUser_PasswordHashNotSerialized(t *testing.T) {
	user := User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$secret",
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Failed to marshal user: %v", err)
	}

	if strings.Contains(string(data), "secret") {
		t.Fatal("Password hash must never appear in JSON output")
	}
}
