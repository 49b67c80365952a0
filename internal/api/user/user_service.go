package user

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jobtrack/jobtrack-go/internal/db"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// mysqlDuplicateEntry is the server error code for a UNIQUE key violation.
const mysqlDuplicateEntry = 1062

// UserService is the credential store: it owns the users table and is the
// only place that reads or writes password hashes.
type UserService struct {
	db *sql.DB
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser inserts a new user and returns its generated id. Email
// uniqueness is enforced by the UNIQUE constraint on users.email, so two
// concurrent registrations with the same email cannot both succeed.
func (s *UserService) CreateUser(email string, passwordHash string, userType db.UserType) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO users (email, password_hash, user_type) VALUES (?, ?, ?)",
		email, passwordHash, userType,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return 0, ErrEmailTaken
		}
		return 0, err
	}

	return res.LastInsertId()
}

// GetUserByEmail returns the user with its password hash, or nil when no
// user exists with that email.
func (s *UserService) GetUserByEmail(email string) (*db.User, error) {
	var u db.User
	err := s.db.QueryRow(
		"SELECT id, email, password_hash, user_type FROM users WHERE email = ?",
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.UserType)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *UserService) GetUserByID(id int64) (*db.User, error) {
	var u db.User
	err := s.db.QueryRow(
		"SELECT id, email, user_type FROM users WHERE id = ?",
		id,
	).Scan(&u.ID, &u.Email, &u.UserType)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
