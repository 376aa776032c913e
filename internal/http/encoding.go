package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Flarenzy/simple-ipam/internal/domain"
)

var errMalformedBody = errors.New("malformed request body")

func encode[T any](w http.ResponseWriter, _ *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if r.Body == nil {
		return v, errMalformedBody
	}
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return v, nil
}

func parsePathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return id, nil
}

func parseListSubnets(r *http.Request) (domain.ListSubnetsInput, error) {
	q := r.URL.Query()
	input := domain.ListSubnetsInput{Limit: domain.DefaultListLimit}

	if raw := q.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return input, fmt.Errorf("%w: skip must be a non-negative integer", domain.ErrValidation)
		}
		input.Skip = skip
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > domain.MaxListLimit {
			return input, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, domain.MaxListLimit)
		}
		input.Limit = limit
	}
	if raw := q.Get("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return input, fmt.Errorf("%w: is_active must be a boolean", domain.ErrValidation)
		}
		input.IsActive = &active
	}

	return input, nil
}

// statusFor maps service errors onto HTTP statuses and client-safe messages.
// notFound names the resource for plain ErrNotFound.
func statusFor(err error, notFound string) (int, string) {
	switch {
	case errors.Is(err, errMalformedBody):
		return http.StatusUnprocessableEntity, errMalformedBody.Error()
	case errors.Is(err, domain.ErrSubnetNotFound):
		return http.StatusNotFound, "subnet not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, notFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidNetwork):
		return http.StatusBadRequest, "invalid network format"
	case errors.Is(err, domain.ErrNetworkInfoUnavailable):
		return http.StatusBadRequest, "network info unavailable"
	case errors.Is(err, domain.ErrDuplicateNetwork):
		return http.StatusBadRequest, "duplicate network"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest, "ip already exists in subnet"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (a *API) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	status, msg := statusFor(err, notFound)
	if status == http.StatusInternalServerError {
		a.Logger.ErrorContext(r.Context(), "unhandled service error", "err", err.Error())
	}
	a.respond(w, r, status, ErrorResponse{Error: msg})
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}
