package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// ErrorResponse is the JSON body of every 4xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ListResponse wraps collections as {"data": [...]}.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

var errInvalidBody = errors.New("invalid request body")

// statusForError maps semantic errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, command.ErrTokenLimitExceeded):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStatusTooLong):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrInvalidReactionKind),
		errors.Is(err, domain.ErrInvalidDecision),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidStatusContent),
		errors.Is(err, command.ErrEmptyFreet),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errInvalidQuery):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
		w.WriteHeader(status)
		return
	}

	logger.WarnContext(ctx, msg, "error", err, "status", status)
	respondJSON(ctx, w, status, ErrorResponse{Message: err.Error()})
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func respondCacheable(w http.ResponseWriter, r *http.Request, maxAge time.Duration) {
	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(maxAge.Seconds())))
	}
}

// decodeBody reads a JSON request body into v. An absent body leaves v unchanged.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return nil
}
