package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrProfileNotFound indicates no snapshot is stored for a user
type ErrProfileNotFound struct {
	UserID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found: %s", e.UserID)
}

// ErrStoreUnavailable indicates the server runs without a profile store
var ErrStoreUnavailable = errors.New("profile store is not configured")

// HTTPStatus returns the appropriate HTTP status code for an error.
// Render failures and unknown errors map to 500.
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		schemaErr   *schemas.ValidationError
		loadErr     *schemas.SchemaLoadError
		notFound    *ErrProfileNotFound
		unsupported *rendering.UnsupportedTemplateError
		tooLarge    *http.MaxBytesError
		fieldErrs   validator.ValidationErrors
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &schemaErr), errors.As(err, &loadErr),
		errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unsupported):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
