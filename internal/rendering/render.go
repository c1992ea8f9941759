package rendering

import (
	"bytes"

	"github.com/jonathan/resume-engine/internal/types"
)

// Template composes a document tree for one layout variant.
// Implementations hold no state and are safe for concurrent use.
type Template interface {
	ID() types.TemplateID
	Compose(snapshot *types.ProfileSnapshot, cfg *types.StyleConfig) *Document
}

// TemplateFor returns the template implementing id. The classic identifier is a
// permanent alias of the harvard layout.
func TemplateFor(id types.TemplateID) (Template, error) {
	switch id {
	case types.TemplateHarvard, types.TemplateClassic:
		return harvardTemplate{}, nil
	case types.TemplateModern:
		return modernTemplate{}, nil
	default:
		return nil, &UnsupportedTemplateError{ID: id}
	}
}

// TemplateInfo describes an available template
type TemplateInfo struct {
	ID          types.TemplateID `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	AliasOf     types.TemplateID `json:"alias_of,omitempty"`
}

// Templates lists every accepted template identifier
func Templates() []TemplateInfo {
	return []TemplateInfo{
		{ID: types.TemplateHarvard, Name: "Harvard", Description: "Single column with a centered header and full-width sections"},
		{ID: types.TemplateModern, Name: "Modern", Description: "Two columns: experience and links on the left, summary, education and skills on the right"},
		{ID: types.TemplateClassic, Name: "Classic", Description: "Same layout as Harvard", AliasOf: types.TemplateHarvard},
	}
}

// Compose builds the document tree for a snapshot. Unset config fields take their
// defaults on a copy; an unknown template is rejected before any work.
func Compose(snapshot *types.ProfileSnapshot, cfg *types.StyleConfig) (*Document, error) {
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}
	if cfg == nil {
		return nil, ErrNilConfig
	}
	tmpl, err := TemplateFor(cfg.Template)
	if err != nil {
		return nil, err
	}
	resolved := cfg.WithDefaults()
	return tmpl.Compose(snapshot, &resolved), nil
}

// Render produces the PDF bytes of a resume. Structurally equal inputs yield
// byte-identical output.
func Render(snapshot *types.ProfileSnapshot, cfg *types.StyleConfig) ([]byte, error) {
	doc, err := Compose(snapshot, cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderHTML produces the HTML preview of a resume from the same document tree as Render.
func RenderHTML(snapshot *types.ProfileSnapshot, cfg *types.StyleConfig) ([]byte, error) {
	doc, err := Compose(snapshot, cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
