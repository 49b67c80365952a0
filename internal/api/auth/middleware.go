package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// AuthMiddleware guards every job and analytics route. A missing or
// malformed Authorization header yields 403, while a bearer token that is
// present but expired or invalid yields 401. The two codes are asserted by
// API consumers, so the distinction is load-bearing.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.sendErrorResponse(w, http.StatusForbidden, "not authenticated", "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			h.sendErrorResponse(w, http.StatusForbidden, "not authenticated", "Invalid authorization header format")
			return
		}

		userID, err := h.service.ParseJWT(parts[1])
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Token expired")
				return
			}
			h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext extracts the authenticated user id set by AuthMiddleware.
func UserIDFromContext(r *http.Request) (int64, error) {
	userID, ok := r.Context().Value(userIDContextKey).(int64)
	if !ok {
		return 0, errors.New("no user id found in context")
	}
	return userID, nil
}
