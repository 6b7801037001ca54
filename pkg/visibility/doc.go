// Package visibility holds the predicates that decide whether the metadata
// panel is registered for a given screen and record.
package visibility
