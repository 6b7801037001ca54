package section

import (
	"sort"

	"github.com/goliatone/go-metaviewer/pkg/metasource"
	"github.com/goliatone/go-metaviewer/pkg/record"
)

// Section names.
const (
	RecordData      = "Record Data"
	OperationalData = "Operational Data"
	AddressData     = "Address Data"
	OtherData       = "Other Data"
)

// Section is a named mapping from field name to value.
type Section struct {
	Name   string
	Fields map[string]any
}

// SortedKeys returns the field names in byte order.
func (s Section) SortedKeys() []string {
	keys := make([]string, 0, len(s.Fields))
	for key := range s.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Names returns the declared section order for kind.
func Names(kind record.Kind) []string {
	if kind == record.KindOrder {
		return []string{RecordData, OperationalData, AddressData, OtherData}
	}
	return []string{RecordData, OtherData}
}

// Build maps a snapshot to its ordered sections. When the snapshot carries no
// record every section is present but empty.
func Build(snap metasource.Snapshot) []Section {
	v := snap.Variant
	if !v.Present() {
		return emptySections(v.Kind)
	}
	if v.Kind == record.KindOrder {
		return orderSections(v.Order, snap.OrderMeta)
	}
	return postSections(v.Post, snap.PostMeta)
}

func emptySections(kind record.Kind) []Section {
	names := Names(kind)
	out := make([]Section, 0, len(names))
	for _, name := range names {
		out = append(out, Section{Name: name, Fields: map[string]any{}})
	}
	return out
}

func postSections(post *record.Post, meta map[string][]string) []Section {
	other := make(map[string]any, len(meta))
	for key, values := range meta {
		other[key] = values
	}

	return []Section{
		{
			Name: RecordData,
			Fields: map[string]any{
				"ID":                post.ID,
				"post_author":       post.AuthorID,
				"post_date":         post.Date,
				"post_date_gmt":     post.DateGMT,
				"post_content":      post.Content,
				"post_title":        post.Title,
				"post_status":       post.Status,
				"post_type":         post.Type,
				"post_modified":     post.Modified,
				"post_modified_gmt": post.ModifiedGMT,
				"post_parent":       post.ParentID,
			},
		},
		{Name: OtherData, Fields: other},
	}
}
