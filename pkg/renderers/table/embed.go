package table

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const tableTemplate = "templates/table.tmpl"

// TemplatesFS exposes the embedded template bundle so callers can extend or
// override it via WithTemplatesFS.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
