package jobs

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jobtrack/jobtrack-go/internal/db"
)

// ErrJobNotFound covers both "no such job" and "job owned by someone else";
// callers must not be able to tell the two apart.
var ErrJobNotFound = errors.New("job not found")

const jobColumns = "id, user_id, company_name, position, status, salary, link, notes, created_at, updated_at"

// updatableColumns fixes the SET clause order for partial updates.
var updatableColumns = []string{"company_name", "position", "status", "salary", "link", "notes"}

// JobService owns the jobs table. Every query is scoped by user_id so a
// job is invisible to anyone but its owner.
type JobService struct {
	db *sql.DB
}

func NewJobService(db *sql.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) Create(ownerID int64, companyName, position string, status db.JobStatus, salary, link, notes *string) (*db.Job, error) {
	now := time.Now().UTC().Truncate(time.Second)

	res, err := s.db.Exec(
		"INSERT INTO jobs (user_id, company_name, position, status, salary, link, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		ownerID, companyName, position, status, salary, link, notes, now, now,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &db.Job{
		ID:          id,
		UserID:      ownerID,
		CompanyName: companyName,
		Position:    position,
		Status:      status,
		Salary:      salary,
		Link:        link,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// List returns the owner's jobs newest first, ties in insertion order.
// The company filter is a substring match; under MySQL's default collation
// LIKE is case-insensitive, which is the documented behavior here.
func (s *JobService) List(ownerID int64, status db.JobStatus, company string) ([]db.Job, error) {
	query := "SELECT " + jobColumns + " FROM jobs WHERE user_id = ?"
	args := []any{ownerID}

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	if company != "" {
		query += " AND company_name LIKE ?"
		args = append(args, "%"+company+"%")
	}

	query += " ORDER BY created_at DESC, id ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]db.Job, 0)
	for rows.Next() {
		var j db.Job
		if err := rows.Scan(&j.ID, &j.UserID, &j.CompanyName, &j.Position, &j.Status, &j.Salary, &j.Link, &j.Notes, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *JobService) Get(ownerID, jobID int64) (*db.Job, error) {
	var j db.Job
	err := s.db.QueryRow(
		"SELECT "+jobColumns+" FROM jobs WHERE id = ? AND user_id = ?",
		jobID, ownerID,
	).Scan(&j.ID, &j.UserID, &j.CompanyName, &j.Position, &j.Status, &j.Salary, &j.Link, &j.Notes, &j.CreatedAt, &j.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	return &j, nil
}

// Update changes only the columns present in fields. An empty map returns
// the current row untouched without bumping updated_at.
func (s *JobService) Update(ownerID, jobID int64, fields map[string]any) (*db.Job, error) {
	existing, err := s.Get(ownerID, jobID)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return existing, nil
	}

	var setParts []string
	var args []any
	for _, col := range updatableColumns {
		if v, ok := fields[col]; ok {
			setParts = append(setParts, col+" = ?")
			args = append(args, v)
		}
	}
	setParts = append(setParts, "updated_at = ?")
	args = append(args, time.Now().UTC().Truncate(time.Second), jobID, ownerID)

	query := "UPDATE jobs SET " + strings.Join(setParts, ", ") + " WHERE id = ? AND user_id = ?"
	if _, err := s.db.Exec(query, args...); err != nil {
		return nil, err
	}

	return s.Get(ownerID, jobID)
}

// Delete hard-deletes the job. A second delete of the same id reports
// ErrJobNotFound, not success.
func (s *JobService) Delete(ownerID, jobID int64) error {
	res, err := s.db.Exec("DELETE FROM jobs WHERE id = ? AND user_id = ?", jobID, ownerID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}
