package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesBcryptDigest(t *testing.T) {
	digest, err := HashPassword("changeme123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if digest == "changeme123" {
		t.Error("digest must not be the plaintext password")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("expected a bcrypt digest, got %q", digest)
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}

	if first == second {
		t.Error("same password should produce different digests (salt)")
	}
	if !CheckPassword("secret123", first) || !CheckPassword("secret123", second) {
		t.Error("both digests should verify against the password")
	}
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("changeme123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"correct password", "changeme123", true},
		{"wrong password", "letmein", false},
		{"empty password", "", false},
		{"trailing character", "changeme1234", false},
		{"case sensitive", "Changeme123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, digest); got != tt.expected {
				t.Errorf("CheckPassword(%q) = %v, expected %v", tt.password, got, tt.expected)
			}
		})
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	// rows predating the backend or tampered with never verify
	for _, digest := range []string{"", "plaintext", "$2x$broken"} {
		if CheckPassword("changeme123", digest) {
			t.Errorf("digest %q should not verify", digest)
		}
	}
}
