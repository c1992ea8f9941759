package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-engine/internal/config"
	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/types"
)

// ---------------------------------------------------------------------
// Stored profile handlers
// ---------------------------------------------------------------------

func (s *Server) userID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid user ID"}
	}
	if s.store == nil {
		return uuid.Nil, ErrStoreUnavailable
	}
	return id, nil
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	return data, nil
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	data, err := s.readBody(w, r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	snapshot, err := config.ParseProfileSnapshot(data)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	if err := s.store.SaveSnapshot(r.Context(), userID, snapshot); err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	snapshot, err := s.store.GetSnapshot(r.Context(), userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if snapshot == nil {
		s.failure(w, r, &ErrProfileNotFound{UserID: userID})
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

func (s *Server) handlePutStyle(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	data, err := s.readBody(w, r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	style, err := config.ParseStyleConfig(data)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	if err := s.store.SaveStyle(r.Context(), userID, style); err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, style)
}

func (s *Server) handleGetStyle(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	style, err := s.userStyle(r, userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, style)
}

// handleUserResume renders the stored snapshot with the stored style
func (s *Server) handleUserResume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	snapshot, err := s.store.GetSnapshot(r.Context(), userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if snapshot == nil {
		s.failure(w, r, &ErrProfileNotFound{UserID: userID})
		return
	}

	style, err := s.userStyle(r, userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if id := r.URL.Query().Get("template"); id != "" {
		style.Template = types.TemplateID(id)
	}

	data, err := rendering.Render(snapshot, style)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.pdfResponse(w, data, "resume.pdf")
}

// userStyle returns the stored style, or the server default when none is stored
func (s *Server) userStyle(r *http.Request, userID uuid.UUID) (*types.StyleConfig, error) {
	style, err := s.store.GetStyle(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	if style == nil {
		def := s.defaultStyle.WithDefaults()
		return &def, nil
	}
	return style, nil
}
