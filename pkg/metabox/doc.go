// Package metabox registers the meta viewer panel with a host admin screen.
//
// A Metabox carries the panel configuration (id, title, screens, placement)
// and decides per screen whether the panel is offered. Hosts implement Host
// and receive a Box whose Render callback writes the table fragment.
package metabox
