package visibility

import "github.com/goliatone/go-metaviewer/pkg/record"

// Predicate decides whether the panel is shown for a record on a screen.
type Predicate interface {
	Visible(objectType string, v record.Variant) bool
}

// PredicateFunc adapts a function into a Predicate.
type PredicateFunc func(objectType string, v record.Variant) bool

// Visible delegates to the underlying function.
func (fn PredicateFunc) Visible(objectType string, v record.Variant) bool {
	return fn(objectType, v)
}

// Always shows the panel.
func Always() Predicate {
	return PredicateFunc(func(string, record.Variant) bool { return true })
}

// RequirePresent hides the panel when the host has no current record.
func RequirePresent() Predicate {
	return PredicateFunc(func(_ string, v record.Variant) bool { return v.Present() })
}

// All shows the panel only when every predicate agrees. Nil entries are
// ignored.
func All(predicates ...Predicate) Predicate {
	return PredicateFunc(func(objectType string, v record.Variant) bool {
		for _, p := range predicates {
			if p != nil && !p.Visible(objectType, v) {
				return false
			}
		}
		return true
	})
}
