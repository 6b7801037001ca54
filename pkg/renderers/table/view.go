package table

import (
	"regexp"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-metaviewer/pkg/render"
	"github.com/goliatone/go-metaviewer/pkg/section"
)

// SectionView is a section ready for the template: its name and its rows in
// key order.
type SectionView struct {
	Name string       `json:"name"`
	Rows []render.Row `json:"rows"`
}

// BuildView sorts each section's keys and expands every field into rows.
// Section order is preserved and empty sections are kept.
func BuildView(sections []section.Section) []SectionView {
	out := make([]SectionView, 0, len(sections))
	for _, s := range sections {
		view := SectionView{Name: s.Name, Rows: []render.Row{}}
		for _, key := range s.SortedKeys() {
			view.Rows = append(view.Rows, render.FormatRows(key, s.Fields[key])...)
		}
		out = append(out, view)
	}
	return out
}

var (
	cssVarNamePattern = regexp.MustCompile(`^-{0,2}[A-Za-z_][A-Za-z0-9_-]*$`)
	cssValueDenylist  = "<>{};\n\r\\"
)

// cssVarsBlock renders theme CSS variables as declarations for the style
// block, sorted by name. Names are normalised to the `--name` form; when two
// spellings collapse to the same variable the one already written with the
// `--` prefix wins. Entries with names or values that could break out of the
// declaration are dropped.
func cssVarsBlock(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}

	rawNames := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		rawNames = append(rawNames, name)
	}
	// "--x" sorts before "-x" and "x", so the prefixed spelling is seen first.
	sort.Strings(rawNames)

	vars := make(map[string]string, len(rawNames))
	names := make([]string, 0, len(rawNames))
	for _, rawName := range rawNames {
		name := strings.TrimSpace(rawName)
		value := strings.TrimSpace(cfg.CSSVars[rawName])
		if !cssVarNamePattern.MatchString(name) || value == "" || strings.ContainsAny(value, cssValueDenylist) {
			continue
		}
		name = "--" + strings.TrimLeft(name, "-")
		if _, seen := vars[name]; seen {
			continue
		}
		vars[name] = value
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString("\t\t")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(vars[name])
		b.WriteString(";\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
