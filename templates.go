package metaviewer

import (
	"io/fs"

	"github.com/goliatone/go-metaviewer/pkg/renderers/table"
)

// EmbeddedTemplates exposes the built-in table templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return table.TemplatesFS()
}
