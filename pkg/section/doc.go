// Package section groups a record's fields into the named sections shown by
// the viewer. The section order for each record kind is fixed here and never
// derived from data.
package section
