package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-engine/internal/config"
	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/schemas"
	"github.com/jonathan/resume-engine/internal/types"
)

// RenderRequest is the body of POST /render and POST /preview
type RenderRequest struct {
	Snapshot json.RawMessage `json:"snapshot" validate:"required"`
	Style    json.RawMessage `json:"style,omitempty"`
}

// Validate validates the RenderRequest using the validator.
func (r *RenderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// decodeRenderRequest parses the body into a snapshot and a defaulted style.
// An absent style uses the server default.
func (s *Server) decodeRenderRequest(w http.ResponseWriter, r *http.Request) (*types.ProfileSnapshot, *types.StyleConfig, error) {
	var req RenderRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		return nil, nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, nil, &ErrValidation{Field: "snapshot", Message: "is required"}
	}

	snapshot, err := config.ParseProfileSnapshot(req.Snapshot)
	if err != nil {
		return nil, nil, err
	}

	if len(req.Style) == 0 || string(req.Style) == "null" {
		style := s.defaultStyle.WithDefaults()
		return snapshot, &style, nil
	}
	style, err := config.ParseStyleConfig(req.Style)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, style, nil
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	return nil
}

// handleRender renders the posted snapshot to PDF
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	snapshot, style, err := s.decodeRenderRequest(w, r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	data, err := rendering.Render(snapshot, style)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.pdfResponse(w, data, "resume.pdf")
}

// handlePreview renders the posted snapshot for interactive editing.
// ?format=html returns markup instead of PDF and ?template= overrides the template.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	snapshot, style, err := s.decodeRenderRequest(w, r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if id := r.URL.Query().Get("template"); id != "" {
		style.Template = types.TemplateID(id)
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "pdf":
		data, err := rendering.Render(snapshot, style)
		if err != nil {
			s.failure(w, r, err)
			return
		}
		s.pdfResponse(w, data, "preview.pdf")
	case "html":
		data, err := rendering.RenderHTML(snapshot, style)
		if err != nil {
			s.failure(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	default:
		s.failure(w, r, &ErrValidation{Field: "format", Message: fmt.Sprintf("unsupported format %q", format)})
	}
}

// handleTemplates lists the accepted template identifiers
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": rendering.Templates()})
}

func (s *Server) pdfResponse(w http.ResponseWriter, data []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// fieldErrors flattens schema and struct validation failures for the response body.
func fieldErrors(err error) []schemas.FieldError {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return schemaErr.Errors
	}

	var structErrs validator.ValidationErrors
	if errors.As(err, &structErrs) {
		out := make([]schemas.FieldError, 0, len(structErrs))
		for _, fe := range structErrs {
			out = append(out, schemas.FieldError{Field: fe.Namespace(), Message: fe.Tag()})
		}
		return out
	}
	return nil
}
