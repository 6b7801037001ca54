// Package template defines the template engine seam used by the HTML
// renderers, with a pongo2 implementation in the gotemplate subpackage.
package template
