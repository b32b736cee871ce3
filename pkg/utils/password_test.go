package utils

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.Contains(hash, ".") {
		t.Fatalf("hash %q is not in salt.hash form", hash)
	}

	if err := VerifyPassword("s3cret-pass", hash); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := VerifyPassword("wrong-pass", hash); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordBlank(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("blank password accepted")
	}
}

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if err := VerifyPassword("whatever", "not-an-encoded-hash"); err == nil {
		t.Error("malformed stored hash accepted")
	}
}
