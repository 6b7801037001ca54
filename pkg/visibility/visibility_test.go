package visibility

import (
	"testing"

	"github.com/goliatone/go-metaviewer/pkg/record"
)

func TestPredicates(t *testing.T) {
	present := record.FromPost(&record.Post{ID: 1})
	absent := record.Variant{Kind: record.KindOrder}

	if !Always().Visible("post", absent) {
		t.Fatalf("Always should be visible")
	}
	if RequirePresent().Visible("post", absent) {
		t.Fatalf("RequirePresent should hide absent records")
	}
	if !RequirePresent().Visible("post", present) {
		t.Fatalf("RequirePresent should show present records")
	}

	onlyPages := PredicateFunc(func(objectType string, _ record.Variant) bool { return objectType == "page" })
	combined := All(RequirePresent(), nil, onlyPages)
	if combined.Visible("post", present) {
		t.Fatalf("combined predicate should hide posts")
	}
	if !combined.Visible("page", present) {
		t.Fatalf("combined predicate should show present pages")
	}
	if !All().Visible("post", absent) {
		t.Fatalf("empty All should be visible")
	}
}
