package auth

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jobtrack/jobtrack-go/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func newTokenService(secret string, ttl time.Duration) *AuthService {
	return NewAuthService(nil, secret, ttl)
}

func TestGenerateAndParseJWT_Success(t *testing.T) {
	t.Parallel()

	s := newTokenService("super-secret", time.Hour)

	tok, err := s.GenerateJWT(42)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	userID, err := s.ParseJWT(tok)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", userID)
	}
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	s := newTokenService("secret", -1*time.Second)

	tok, err := s.GenerateJWT(1)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	_, err = s.ParseJWT(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTokenService("right-secret", time.Hour).GenerateJWT(2)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	_, err = newTokenService("wrong-secret", time.Hour).ParseJWT(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseJWT_Malformed(t *testing.T) {
	t.Parallel()

	s := newTokenService("k", time.Hour)

	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		if _, err := s.ParseJWT(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}

func TestParseJWT_NoneAlgorithmRejected(t *testing.T) {
	t.Parallel()

	claims := db.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "3",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing unsigned token: %v", err)
	}

	_, err = newTokenService("secret", time.Hour).ParseJWT(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none, got %v", err)
	}
}

func TestParseJWT_NonNumericSubject(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := db.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-number",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	_, err = newTokenService(secret, time.Hour).ParseJWT(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for non-numeric subject, got %v", err)
	}
}

func TestParseJWT_SubjectRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTokenService("secret", time.Hour)

	for _, id := range []int64{1, 99, 1<<40 + 7} {
		tok, err := s.GenerateJWT(id)
		if err != nil {
			t.Fatalf("GenerateJWT(%d) error: %v", id, err)
		}
		got, err := s.ParseJWT(tok)
		if err != nil {
			t.Fatalf("ParseJWT error for id %s: %v", strconv.FormatInt(id, 10), err)
		}
		if got != id {
			t.Fatalf("round trip mismatch: got %d want %d", got, id)
		}
	}
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	s := newTokenService("secret", time.Hour)

	hash, err := s.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := s.CheckPasswordHash("password123", hash); err != nil {
		t.Fatalf("CheckPasswordHash rejected correct password: %v", err)
	}

	err = s.CheckPasswordHash("password124", hash)
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Fatalf("expected mismatch error for wrong password, got %v", err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	s := newTokenService("secret", time.Hour)

	first, err := s.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := s.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ")
	}
}
