// Package rendering turns a profile snapshot and a style configuration into a paginated resume.
package rendering

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-engine/internal/types"
)

// Sentinel errors for invalid engine input.
var (
	ErrNilSnapshot = errors.New("profile snapshot is nil")
	ErrNilConfig   = errors.New("style config is nil")
)

// UnsupportedTemplateError is returned before rendering starts when the config
// names a template the engine does not implement.
type UnsupportedTemplateError struct {
	ID types.TemplateID
}

func (e *UnsupportedTemplateError) Error() string {
	return fmt.Sprintf("unsupported template: %q", string(e.ID))
}

// RenderError represents a failure of the underlying document backend.
// No partial output accompanies it.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
