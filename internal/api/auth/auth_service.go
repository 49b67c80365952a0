package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jobtrack/jobtrack-go/internal/api/user"
	"github.com/jobtrack/jobtrack-go/internal/db"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

type AuthService struct {
	UserService *user.UserService
	JWTSecret   []byte
	TTL         time.Duration
}

func NewAuthService(userService *user.UserService, jwtSecret string, ttl time.Duration) *AuthService {
	return &AuthService{
		UserService: userService,
		JWTSecret:   []byte(jwtSecret),
		TTL:         ttl,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func (s *AuthService) CheckPasswordHash(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) GenerateJWT(userID int64) (string, error) {
	now := time.Now()
	claims := db.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
			Issuer:    "jobtrack",
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.JWTSecret)
}

// ParseJWT verifies signature and expiry and returns the numeric user id
// carried in the subject claim. Tokens signed with anything but HMAC are
// rejected outright.
func (s *AuthService) ParseJWT(tokenStr string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &db.Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("alg not allowed")
		}
		return s.JWTSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*db.Claims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}

	return userID, nil
}

// Register hashes the password, stores the new user and logs it straight in
// by issuing a token. Propagates user.ErrEmailTaken from the store.
func (s *AuthService) Register(email, password string, userType db.UserType) (string, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return "", err
	}

	id, err := s.UserService.CreateUser(email, hash, userType)
	if err != nil {
		return "", err
	}

	return s.GenerateJWT(id)
}

// Login fails with the same ErrInvalidCredentials whether the email is
// unknown or the password is wrong.
func (s *AuthService) Login(email, password string) (string, db.UserType, error) {
	u, err := s.UserService.GetUserByEmail(email)
	if err != nil {
		return "", "", err
	}
	if u == nil {
		return "", "", ErrInvalidCredentials
	}

	if err := s.CheckPasswordHash(password, u.PasswordHash); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	token, err := s.GenerateJWT(u.ID)
	if err != nil {
		return "", "", err
	}

	return token, u.UserType, nil
}
