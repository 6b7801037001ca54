package metabox

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-metaviewer/pkg/record"
)

// Placement is the screen area the panel is drawn in.
type Placement string

const (
	PlacementNormal   Placement = "normal"
	PlacementSide     Placement = "side"
	PlacementAdvanced Placement = "advanced"
)

// Valid reports whether p is a known placement.
func (p Placement) Valid() bool {
	switch p {
	case PlacementNormal, PlacementSide, PlacementAdvanced:
		return true
	default:
		return false
	}
}

// Priority orders the panel among others in the same placement.
type Priority string

const (
	PriorityHigh    Priority = "high"
	PriorityCore    Priority = "core"
	PriorityDefault Priority = "default"
	PriorityLow     Priority = "low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityCore, PriorityDefault, PriorityLow:
		return true
	default:
		return false
	}
}

const (
	DefaultID    = "meta_viewer"
	DefaultTitle = "Meta Viewer"
)

var idPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Config describes the panel.
type Config struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	ObjectTypes []string  `json:"object_types" yaml:"object_types"`
	Context     Placement `json:"context" yaml:"context"`
	Priority    Priority  `json:"priority" yaml:"priority"`
}

// DefaultObjectTypes returns the screens the panel is offered on out of the box.
func DefaultObjectTypes() []string {
	return []string{
		"page",
		"post",
		record.TypeShopOrder,
		record.TypeShopSubscription,
		"shop_coupon",
		"aw_workflow",
		"product",
		"product_variation",
		record.ScreenOrders,
		record.ScreenSubscriptions,
	}
}

// DefaultConfig returns the stock panel configuration.
func DefaultConfig() Config {
	return Config{
		ID:          DefaultID,
		Title:       DefaultTitle,
		ObjectTypes: DefaultObjectTypes(),
		Context:     PlacementNormal,
		Priority:    PriorityLow,
	}
}

// Validate checks the configuration for values the host would reject.
func (c Config) Validate() error {
	var errs []error
	if !idPattern.MatchString(c.ID) {
		errs = append(errs, fmt.Errorf("metabox: invalid id %q", c.ID))
	}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, errors.New("metabox: title is required"))
	}
	if len(c.ObjectTypes) == 0 {
		errs = append(errs, errors.New("metabox: at least one object type is required"))
	}
	for _, objectType := range c.ObjectTypes {
		if strings.TrimSpace(objectType) == "" {
			errs = append(errs, errors.New("metabox: empty object type"))
			break
		}
	}
	if !c.Context.Valid() {
		errs = append(errs, fmt.Errorf("metabox: unknown context %q", c.Context))
	}
	if !c.Priority.Valid() {
		errs = append(errs, fmt.Errorf("metabox: unknown priority %q", c.Priority))
	}
	return errors.Join(errs...)
}

// Allows reports whether objectType is on the allow-list.
func (c Config) Allows(objectType string) bool {
	for _, allowed := range c.ObjectTypes {
		if allowed == objectType {
			return true
		}
	}
	return false
}
