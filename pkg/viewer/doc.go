// Package viewer wires the source → section builder → renderer pipeline into
// a single entry point that renders the metadata table for one record.
package viewer
