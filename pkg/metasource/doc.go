// Package metasource fetches the raw key/value collections attached to a
// record: the multi-valued post meta and the order meta table rows. Lookups
// are best effort; a failed or empty read yields an empty collection so the
// viewer still renders.
package metasource
