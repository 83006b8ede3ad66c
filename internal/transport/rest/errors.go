package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// kindValidation tags field-level input errors that carry no AppError kind.
const kindValidation = "VALIDATION"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// statusFor maps an error kind to the HTTP status it is rendered with.
func statusFor(kind domain.ErrorKind) int {
	if kind.IsInput() {
		return http.StatusBadRequest
	}

	switch kind {
	case domain.KindAuthFailed:
		return http.StatusUnauthorized
	case domain.KindPermissionDenied:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindEmailAlreadyUsed:
		return http.StatusConflict
	case domain.KindNetworkUnavailable:
		return http.StatusServiceUnavailable
	case domain.KindProvider, domain.KindParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"error":{"kind","message"}}. Server-side
// failures are logged; expected outcomes are not.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]fieldError, len(vErr.Errors))
		for i, fe := range vErr.Errors {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Kind:    kindValidation,
			Message: vErr.Error(),
			Fields:  fields,
		}})
		return
	}

	appErr := domain.Classify(err)
	status := statusFor(appErr.Kind)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("kind", appErr.Kind.String()),
			slog.String("error", err.Error()),
		)
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Kind:    appErr.Kind.String(),
		Message: appErr.Message(),
	}})
}

// writeBadRequest reports a request the handler could not decode.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
		Kind:    kindValidation,
		Message: message,
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

const maxBodyBytes = 1 << 20
