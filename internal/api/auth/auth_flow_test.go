package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jobtrack/jobtrack-go/internal/api/user"
	"github.com/jobtrack/jobtrack-go/internal/db"
	"github.com/stretchr/testify/require"
)

func newFlowService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()

	database, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return NewAuthService(user.NewUserService(database), "secret", time.Hour), mock
}

func TestRegister_IssuesTokenForNewUser(t *testing.T) {
	s, mock := newFlowService(t)

	mock.ExpectExec("INSERT INTO users (email, password_hash, user_type) VALUES (?, ?, ?)").
		WithArgs("ana@example.com", sqlmock.AnyArg(), "job_seeker").
		WillReturnResult(sqlmock.NewResult(7, 1))

	token, err := s.Register("ana@example.com", "password123", db.UserTypeJobSeeker)
	require.NoError(t, err)

	userID, err := s.ParseJWT(token)
	require.NoError(t, err)
	require.Equal(t, int64(7), userID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, mock := newFlowService(t)

	mock.ExpectExec("INSERT INTO users (email, password_hash, user_type) VALUES (?, ?, ?)").
		WithArgs("ana@example.com", sqlmock.AnyArg(), "employer").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := s.Register("ana@example.com", "password123", db.UserTypeEmployer)
	require.ErrorIs(t, err, user.ErrEmailTaken)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	s, mock := newFlowService(t)

	hash, err := s.HashPassword("password123")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, email, password_hash, user_type FROM users WHERE email = ?").
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "user_type"}).
			AddRow(int64(7), "ana@example.com", hash, "job_seeker"))

	token, userType, err := s.Login("ana@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, db.UserTypeJobSeeker, userType)

	userID, err := s.ParseJWT(token)
	require.NoError(t, err)
	require.Equal(t, int64(7), userID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	s, mock := newFlowService(t)

	// unknown email
	mock.ExpectQuery("SELECT id, email, password_hash, user_type FROM users WHERE email = ?").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "user_type"}))

	_, _, errUnknown := s.Login("nobody@example.com", "password123")
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)

	// wrong password for an existing user
	hash, err := s.HashPassword("password123")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, email, password_hash, user_type FROM users WHERE email = ?").
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "user_type"}).
			AddRow(int64(7), "ana@example.com", hash, "job_seeker"))

	_, _, errWrong := s.Login("ana@example.com", "different456")
	require.ErrorIs(t, errWrong, ErrInvalidCredentials)

	// the caller cannot tell the two failures apart
	require.Equal(t, errUnknown, errWrong)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginHandler_EmptyPasswordIsUnauthorized(t *testing.T) {
	database, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	h := NewAuthHandler("secret", time.Hour, database)

	hash, err := h.service.HashPassword("password123")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, email, password_hash, user_type FROM users WHERE email = ?").
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "user_type"}).
			AddRow(int64(7), "ana@example.com", hash, "job_seeker"))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ana@example.com","password":""}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	// an empty password is a credential failure, not a validation failure
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
