package db

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserType string

const (
	UserTypeJobSeeker UserType = "job_seeker"
	UserTypeEmployer  UserType = "employer"
)

func (t UserType) Valid() bool {
	return t == UserTypeJobSeeker || t == UserTypeEmployer
}

type JobStatus string

const (
	StatusApplied   JobStatus = "Applied"
	StatusInterview JobStatus = "Interview"
	StatusOffer     JobStatus = "Offer"
	StatusRejected  JobStatus = "Rejected"
)

func (s JobStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	UserType     UserType  `json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// Job is serialized as-is in API responses; the owner id stays internal.
type Job struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	CompanyName string    `json:"company_name"`
	Position    string    `json:"position"`
	Status      JobStatus `json:"status"`
	Salary      *string   `json:"salary"`
	Link        *string   `json:"link"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Claims struct {
	jwt.RegisteredClaims
}
