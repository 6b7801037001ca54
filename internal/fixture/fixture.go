// Package fixture loads sample posts and orders from YAML for the harness.
//
// Dates may be written in any format dateparse understands; post dates are
// normalised to the host's "YYYY-MM-DD HH:MM:SS" column text and order dates
// become time values.
package fixture

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-metaviewer/pkg/metasource"
	"github.com/goliatone/go-metaviewer/pkg/record"
)

const postDateLayout = "2006-01-02 15:04:05"

// Option customises parsing.
type Option func(*options)

type options struct {
	location *time.Location
}

// WithLocation sets the zone used for dates without an explicit offset.
// Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// Fixture is a decoded set of records and their meta.
type Fixture struct {
	Posts  []record.Post
	Orders []record.Order

	store *metasource.MemoryStore
}

type document struct {
	Posts  []record.Post `yaml:"posts"`
	Orders []orderDoc    `yaml:"orders"`
}

type orderDoc struct {
	record.Order `yaml:",inline"`

	DateCreated   string         `yaml:"date_created"`
	DateModified  string         `yaml:"date_modified"`
	DatePaid      string         `yaml:"date_paid"`
	DateCompleted string         `yaml:"date_completed"`
	Meta          map[string]any `yaml:"meta"`
}

// Load reads and parses the fixture at path.
func Load(path string, opts ...Option) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return Parse(data, opts...)
}

// Parse decodes a fixture document.
func Parse(data []byte, opts ...Option) (*Fixture, error) {
	o := options{location: time.UTC}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parse: %w", err)
	}

	f := &Fixture{store: metasource.NewMemoryStore()}
	seenPosts := make(map[int64]bool, len(doc.Posts))
	for i, post := range doc.Posts {
		if seenPosts[post.ID] {
			return nil, fmt.Errorf("fixture: posts[%d]: duplicate id %d", i, post.ID)
		}
		seenPosts[post.ID] = true

		for _, field := range []*string{&post.Date, &post.DateGMT, &post.Modified, &post.ModifiedGMT} {
			normalized, err := normalizePostDate(*field, o.location)
			if err != nil {
				return nil, fmt.Errorf("fixture: posts[%d]: %w", i, err)
			}
			*field = normalized
		}
		f.Posts = append(f.Posts, post)
		f.store.SetPostMeta(post.ID, post.Meta)
	}

	seenOrders := make(map[int64]bool, len(doc.Orders))
	for i, entry := range doc.Orders {
		if seenOrders[entry.ID] {
			return nil, fmt.Errorf("fixture: orders[%d]: duplicate id %d", i, entry.ID)
		}
		seenOrders[entry.ID] = true

		order := entry.Order
		dates := []struct {
			raw  string
			dest **time.Time
		}{
			{entry.DateCreated, &order.DateCreated},
			{entry.DateModified, &order.DateModified},
			{entry.DatePaid, &order.DatePaid},
			{entry.DateCompleted, &order.DateCompleted},
		}
		for _, d := range dates {
			parsed, err := parseTime(d.raw, o.location)
			if err != nil {
				return nil, fmt.Errorf("fixture: orders[%d]: %w", i, err)
			}
			*d.dest = parsed
		}
		if order.Type == "" {
			order.Type = record.TypeShopOrder
		}
		f.Orders = append(f.Orders, order)
		f.store.SetOrderMeta(order.ID, entry.Meta)
	}
	return f, nil
}

func parseTime(raw string, loc *time.Location) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return &t, nil
}

func normalizePostDate(raw string, loc *time.Location) (string, error) {
	t, err := parseTime(raw, loc)
	if err != nil || t == nil {
		return "", err
	}
	return t.Format(postDateLayout), nil
}

// Store returns the meta store populated from the fixture.
func (f *Fixture) Store() *metasource.MemoryStore {
	return f.store
}

// Find resolves the record with id for the given screen. Order-like object
// types look in the orders list, everything else in the posts list.
func (f *Fixture) Find(objectType string, id int64) (record.Variant, bool) {
	if record.IsOrderType(objectType) {
		for i := range f.Orders {
			if f.Orders[i].ID == id {
				return record.Resolve(objectType, nil, &f.Orders[i]), true
			}
		}
		return record.Resolve(objectType, nil, nil), false
	}
	for i := range f.Posts {
		if f.Posts[i].ID == id {
			return record.Resolve(objectType, &f.Posts[i], nil), true
		}
	}
	return record.Resolve(objectType, nil, nil), false
}

// Entry describes one record for selection prompts.
type Entry struct {
	ObjectType string
	ID         int64
	Label      string
}

// Entries lists every record, posts first, each group ordered by id.
func (f *Fixture) Entries() []Entry {
	entries := make([]Entry, 0, len(f.Posts)+len(f.Orders))
	for _, post := range f.Posts {
		objectType := post.Type
		if objectType == "" {
			objectType = "post"
		}
		label := post.Title
		if label == "" {
			label = "(no title)"
		}
		entries = append(entries, Entry{
			ObjectType: objectType,
			ID:         post.ID,
			Label:      fmt.Sprintf("%s #%d %s", objectType, post.ID, label),
		})
	}
	for _, order := range f.Orders {
		entries = append(entries, Entry{
			ObjectType: order.Type,
			ID:         order.ID,
			Label:      fmt.Sprintf("%s #%d %s", order.Type, order.ID, orderLabel(order)),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		oi, oj := record.IsOrderType(entries[i].ObjectType), record.IsOrderType(entries[j].ObjectType)
		if oi != oj {
			return !oi
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

func orderLabel(order record.Order) string {
	status := order.Status
	if status == "" {
		status = "(no status)"
	}
	if order.Total == "" {
		return status
	}
	return strings.TrimSpace(status + " " + order.Total + " " + order.Currency)
}
