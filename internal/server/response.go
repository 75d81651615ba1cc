package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexisbeaulieu97/slidepreview/internal/editor"
	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	body := errorBody{Error: err.Error()}
	var ve *slideerrors.ValidationError
	if errors.As(err, &ve) {
		body.Field = ve.Field
	}
	writeJSON(w, status, body)
}

// statusFor maps domain errors onto HTTP statuses.
func statusFor(err error) int {
	var (
		ve *slideerrors.ValidationError
		pe *slideerrors.ParseError
	)
	switch {
	case errors.Is(err, editor.ErrLogoTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, editor.ErrUnsupportedLogo):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &ve), errors.As(err, &pe):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return slideerrors.NewValidationError("body", "invalid JSON body", err)
	}
	return nil
}
