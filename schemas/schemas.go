// Package schemas embeds the JSON Schemas of the engine's input documents.
package schemas

import "embed"

// Schema file names inside FS
const (
	StyleConfig     = "style_config.schema.json"
	ProfileSnapshot = "profile_snapshot.schema.json"
)

// FS holds every *.schema.json file of this directory
//
//go:embed *.schema.json
var FS embed.FS
