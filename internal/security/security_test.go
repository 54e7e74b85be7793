package security

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
)

func TestHashAndComparePassword(t *testing.T) {
	cfg := &BcryptConfig{Cost: 4, MinLength: 6}

	hash, err := HashPassword("secret123", cfg)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePassword(hash, "secret123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := ComparePassword(hash, "wrong-pass"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("abc", &BcryptConfig{Cost: 4, MinLength: 6})
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("got %v, want ErrPasswordTooShort", err)
	}
}

func TestRandomStringURLSafe(t *testing.T) {
	a, err := RandomStringURLSafe(32)
	if err != nil {
		t.Fatalf("RandomStringURLSafe: %v", err)
	}
	b, err := RandomStringURLSafe(32)
	if err != nil {
		t.Fatalf("RandomStringURLSafe: %v", err)
	}
	if a == b {
		t.Error("two random strings are equal")
	}
	if len(a) == 0 {
		t.Error("empty random string")
	}
}

func TestSHA256Hex(t *testing.T) {
	// хэш стабилен и не равен исходной строке
	h1 := SHA256HexOfString("token-value")
	h2 := SHA256HexOfString("token-value")
	if h1 != h2 {
		t.Error("hash is not deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("hex length = %d, want 64", len(h1))
	}
	if h1 == SHA256HexOfString("other-token") {
		t.Error("different inputs hash equal")
	}
}

func testSigner(t *testing.T, ttl time.Duration) *JWTSigner {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey: %v", err)
	}
	return NewJWTSigner(key, &key.PublicKey, "swasthya-setu", "swasthya-setu-api", ttl, 30*time.Second)
}

func TestJWTSigner_SignAndValidate(t *testing.T) {
	s := testSigner(t, 15*time.Minute)

	tok, err := s.SignAccessToken(42, domain.RoleDoctor, time.Now())
	if err != nil {
		t.Fatalf("SignAccessToken: %v", err)
	}
	claims, err := s.ParseAndValidate(tok)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	id, err := SubjectAsUserID(claims)
	if err != nil {
		t.Fatalf("SubjectAsUserID: %v", err)
	}
	if id != 42 {
		t.Errorf("subject = %d, want 42", id)
	}
	if claims.Role != string(domain.RoleDoctor) {
		t.Errorf("role = %q, want %q", claims.Role, domain.RoleDoctor)
	}
}

func TestJWTSigner_RejectsForeignKey(t *testing.T) {
	issuing := testSigner(t, 15*time.Minute)
	verifying := testSigner(t, 15*time.Minute)

	tok, err := issuing.SignAccessToken(1, domain.RoleASHA, time.Now())
	if err != nil {
		t.Fatalf("SignAccessToken: %v", err)
	}
	if _, err := verifying.ParseAndValidate(tok); err == nil {
		t.Fatal("token signed with another key accepted")
	}
}

func TestJWTSigner_RejectsExpired(t *testing.T) {
	s := testSigner(t, time.Minute)

	tok, err := s.SignAccessToken(1, domain.RoleASHA, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("SignAccessToken: %v", err)
	}
	if _, err := s.ParseAndValidate(tok); err == nil {
		t.Fatal("expired token accepted")
	}
}
