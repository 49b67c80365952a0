package analytics

import (
	"database/sql"
	"math"

	"github.com/jobtrack/jobtrack-go/internal/db"
)

type Summary struct {
	TotalJobs     int     `json:"total_jobs" example:"5"`
	Applied       int     `json:"applied" example:"2"`
	Interview     int     `json:"interview" example:"1"`
	Offer         int     `json:"offer" example:"1"`
	Rejected      int     `json:"rejected" example:"1"`
	InterviewRate float64 `json:"interview_rate" example:"20"`
	OfferRate     float64 `json:"offer_rate" example:"20"`
}

type AnalyticsService struct {
	db *sql.DB
}

func NewAnalyticsService(db *sql.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// Summary aggregates the owner's jobs by status. Statuses with no jobs
// count as zero and both rates are zero when the user has no jobs at all.
func (s *AnalyticsService) Summary(ownerID int64) (*Summary, error) {
	rows, err := s.db.Query("SELECT status, COUNT(*) FROM jobs WHERE user_id = ? GROUP BY status", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[db.JobStatus]int)
	for rows.Next() {
		var status db.JobStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return buildSummary(counts), nil
}

func buildSummary(counts map[db.JobStatus]int) *Summary {
	summary := &Summary{
		Applied:   counts[db.StatusApplied],
		Interview: counts[db.StatusInterview],
		Offer:     counts[db.StatusOffer],
		Rejected:  counts[db.StatusRejected],
	}
	summary.TotalJobs = summary.Applied + summary.Interview + summary.Offer + summary.Rejected

	if summary.TotalJobs > 0 {
		total := float64(summary.TotalJobs)
		summary.InterviewRate = round2(float64(summary.Interview) / total * 100)
		summary.OfferRate = round2(float64(summary.Offer) / total * 100)
	}

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
