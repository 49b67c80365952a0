package analytics

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/jobtrack/jobtrack-go/internal/api/auth"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"server error"`
	Message string `json:"message,omitempty" example:"Error computing analytics"`
}

type AnalyticsHandler struct {
	service *AnalyticsService
}

func NewAnalyticsHandler(database *sql.DB) *AnalyticsHandler {
	return &AnalyticsHandler{service: NewAnalyticsService(database)}
}

// GetSummary godoc
// @Summary		Job application analytics
// @Description	Status counts and interview/offer rates for the authenticated user's applications
// @Tags			analytics
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	Summary			"Analytics computed"
// @Failure		401	{object}	ErrorResponse	"Unauthorized - invalid or expired token"
// @Failure		403	{object}	ErrorResponse	"Forbidden - missing credentials"
// @Failure		500	{object}	ErrorResponse	"Internal server error"
// @Router			/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	summary, err := h.service.Summary(userID)
	if err != nil {
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error computing analytics")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summary)
}

func (h *AnalyticsHandler) sendErrorResponse(w http.ResponseWriter, statusCode int, error string, message string) {
	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
