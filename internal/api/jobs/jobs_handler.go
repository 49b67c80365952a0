package jobs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jobtrack/jobtrack-go/internal/api/auth"
	"github.com/jobtrack/jobtrack-go/internal/db"
)

type CreateJobRequest struct {
	CompanyName string  `json:"company_name" example:"Acme Corp"`
	Position    string  `json:"position" example:"Backend Engineer"`
	Status      string  `json:"status" example:"Applied" enums:"Applied,Interview,Offer,Rejected"`
	Salary      *string `json:"salary" example:"120k"`
	Link        *string `json:"link" example:"https://acme.example/careers/42"`
	Notes       *string `json:"notes" example:"Referred by Ana"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"job not found"`
	Message string `json:"message,omitempty" example:"No job found with the provided id"`
}

type JobHandler struct {
	service *JobService
}

func NewJobHandler(database *sql.DB) *JobHandler {
	return &JobHandler{service: NewJobService(database)}
}

// CreateJob godoc
// @Summary		Add a job application
// @Description	Record a new job application for the authenticated user
// @Tags			jobs
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			job	body		CreateJobRequest	true	"Job application data"
// @Success		201	{object}	db.Job				"Job created"
// @Failure		400	{object}	ErrorResponse		"Bad request - invalid input"
// @Failure		401	{object}	ErrorResponse		"Unauthorized - invalid or expired token"
// @Failure		403	{object}	ErrorResponse		"Forbidden - missing credentials"
// @Failure		500	{object}	ErrorResponse		"Internal server error"
// @Router			/jobs [post]
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	if strings.TrimSpace(req.CompanyName) == "" || strings.TrimSpace(req.Position) == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "validation failed", "company_name and position are required")
		return
	}

	status := db.StatusApplied
	if req.Status != "" {
		status = db.JobStatus(req.Status)
		if !status.Valid() {
			h.sendErrorResponse(w, http.StatusBadRequest, "validation failed", "status must be one of Applied, Interview, Offer, Rejected")
			return
		}
	}

	job, err := h.service.Create(userID, req.CompanyName, req.Position, status, req.Salary, req.Link, req.Notes)
	if err != nil {
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error creating job")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(job)
}

// ListJobs godoc
// @Summary		List job applications
// @Description	List the authenticated user's job applications, newest first, optionally filtered
// @Tags			jobs
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			status	query		string			false	"Exact status filter"	Enums(Applied, Interview, Offer, Rejected)
// @Param			company	query		string			false	"Company name substring filter"
// @Success		200		{array}		db.Job			"Jobs retrieved"
// @Failure		400		{object}	ErrorResponse	"Bad request - invalid status value"
// @Failure		401		{object}	ErrorResponse	"Unauthorized - invalid or expired token"
// @Failure		403		{object}	ErrorResponse	"Forbidden - missing credentials"
// @Failure		500		{object}	ErrorResponse	"Internal server error"
// @Router			/jobs [get]
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var status db.JobStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = db.JobStatus(raw)
		if !status.Valid() {
			h.sendErrorResponse(w, http.StatusBadRequest, "validation failed", "status must be one of Applied, Interview, Offer, Rejected")
			return
		}
	}
	company := r.URL.Query().Get("company")

	jobs, err := h.service.List(userID, status, company)
	if err != nil {
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error listing jobs")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(jobs)
}

// GetJob godoc
// @Summary		Get a job application
// @Description	Retrieve one of the authenticated user's job applications by id
// @Tags			jobs
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int				true	"Job id"
// @Success		200	{object}	db.Job			"Job retrieved"
// @Failure		400	{object}	ErrorResponse	"Bad request - invalid id"
// @Failure		401	{object}	ErrorResponse	"Unauthorized - invalid or expired token"
// @Failure		403	{object}	ErrorResponse	"Forbidden - missing credentials"
// @Failure		404	{object}	ErrorResponse	"Job not found"
// @Failure		500	{object}	ErrorResponse	"Internal server error"
// @Router			/jobs/{id} [get]
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	jobID, err := h.jobIDFromURL(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid id", "Job id must be an integer")
		return
	}

	job, err := h.service.Get(userID, jobID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			h.sendErrorResponse(w, http.StatusNotFound, "job not found", "No job found with the provided id")
			return
		}
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error retrieving job")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(job)
}

// UpdateJob godoc
// @Summary		Update a job application
// @Description	Partially update a job application; only fields present in the body change
// @Tags			jobs
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int					true	"Job id"
// @Param			job	body		map[string]string	true	"Fields to change"
// @Success		200	{object}	db.Job				"Job updated"
// @Failure		400	{object}	ErrorResponse		"Bad request - invalid input"
// @Failure		401	{object}	ErrorResponse		"Unauthorized - invalid or expired token"
// @Failure		403	{object}	ErrorResponse		"Forbidden - missing credentials"
// @Failure		404	{object}	ErrorResponse		"Job not found"
// @Failure		500	{object}	ErrorResponse		"Internal server error"
// @Router			/jobs/{id} [put]
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	jobID, err := h.jobIDFromURL(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid id", "Job id must be an integer")
		return
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	fields, err := parseJobUpdate(body)
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	job, err := h.service.Update(userID, jobID, fields)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			h.sendErrorResponse(w, http.StatusNotFound, "job not found", "No job found with the provided id")
			return
		}
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error updating job")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(job)
}

// DeleteJob godoc
// @Summary		Delete a job application
// @Description	Permanently delete one of the authenticated user's job applications
// @Tags			jobs
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id	path	int	true	"Job id"
// @Success		204	"Job deleted"
// @Failure		400	{object}	ErrorResponse	"Bad request - invalid id"
// @Failure		401	{object}	ErrorResponse	"Unauthorized - invalid or expired token"
// @Failure		403	{object}	ErrorResponse	"Forbidden - missing credentials"
// @Failure		404	{object}	ErrorResponse	"Job not found"
// @Failure		500	{object}	ErrorResponse	"Internal server error"
// @Router			/jobs/{id} [delete]
func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	jobID, err := h.jobIDFromURL(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid id", "Job id must be an integer")
		return
	}

	if err := h.service.Delete(userID, jobID); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			h.sendErrorResponse(w, http.StatusNotFound, "job not found", "No job found with the provided id")
			return
		}
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error deleting job")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Helpers

// parseJobUpdate turns a raw JSON object into a sparse field map so that an
// omitted field and a field explicitly set to null stay distinguishable.
// Unknown keys are ignored.
func parseJobUpdate(body map[string]json.RawMessage) (map[string]any, error) {
	fields := make(map[string]any)
	for key, raw := range body {
		switch key {
		case "company_name", "position", "salary", "link", "notes":
			var v *string
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, fmt.Errorf("%s must be a string or null", key)
			}
			fields[key] = v
		case "status":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, errors.New("status must be a string")
			}
			if !db.JobStatus(v).Valid() {
				return nil, errors.New("status must be one of Applied, Interview, Offer, Rejected")
			}
			fields[key] = v
		}
	}
	return fields, nil
}

func (h *JobHandler) jobIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *JobHandler) sendErrorResponse(w http.ResponseWriter, statusCode int, error string, message string) {
	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
