package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TableRow is one parsed <tr> of a rendered metadata table. Header rows carry
// the section name in Section; data rows carry the unescaped Key and Value and
// the Section they belong to.
type TableRow struct {
	Header  bool
	Section string
	Key     string
	Value   string
}

// ParseTable parses a rendered fragment and returns its rows in document
// order. Entity escapes are decoded, so values compare against raw input.
func ParseTable(t *testing.T, fragment string) []TableRow {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	var (
		rows    []TableRow
		current string
		walk    func(*html.Node)
	)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			row := parseRow(n)
			if row.Header {
				current = row.Section
			} else {
				row.Section = current
			}
			rows = append(rows, row)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rows
}

// DataRows filters rows down to the data rows of one section.
func DataRows(rows []TableRow, section string) []TableRow {
	var out []TableRow
	for _, row := range rows {
		if !row.Header && row.Section == section {
			out = append(out, row)
		}
	}
	return out
}

// Headers returns the section header names in order.
func Headers(rows []TableRow) []string {
	var out []string
	for _, row := range rows {
		if row.Header {
			out = append(out, row.Section)
		}
	}
	return out
}

func parseRow(tr *html.Node) TableRow {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom == atom.Th {
			return TableRow{Header: true, Section: textContent(c)}
		}
		if c.DataAtom == atom.Td {
			cells = append(cells, c)
		}
	}

	var row TableRow
	if len(cells) > 0 {
		row.Key = textContent(cells[0])
	}
	if len(cells) > 1 {
		row.Value = textContent(cells[1])
	}
	return row
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
