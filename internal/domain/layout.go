package domain

import "fmt"

// Layout describes the numbering rules of a Johnny Decimal variant.
// It is a plain configuration value: every component that needs to know
// where item numbers start or stop reads it from here instead of
// hardcoding a variant.
type Layout struct {
	Name            string
	MaxAreas        int  // maximum number of user-defined areas
	SystemArea      bool // whether area 00-09 exists for system management
	ItemFloor       int  // first assignable sequence number in a regular category
	SystemItemFloor int  // first assignable sequence number in a system category
	ItemCeiling     int  // last assignable sequence number (inclusive)
}

// Alternative1 is the "Alternative Layout 1" proposal: area management
// lives in the system area (00-09), categories may use A0-A9, and item
// IDs start at .10 with no buffer. This is the default layout.
var Alternative1 = Layout{
	Name:            "alt1",
	MaxAreas:        9,
	SystemArea:      true,
	ItemFloor:       10,
	SystemItemFloor: 0,
	ItemCeiling:     99,
}

// Standard is the official layout: no system area, .00-.09 reserved for
// standard zeros and .10 skipped as a buffer, so items start at .11.
var Standard = Layout{
	Name:            "standard",
	MaxAreas:        10,
	SystemArea:      false,
	ItemFloor:       11,
	SystemItemFloor: 0,
	ItemCeiling:     99,
}

// Simple is a plain per-category counter starting at .01, for users who
// want the folder structure without the reserved ranges.
var Simple = Layout{
	Name:            "simple",
	MaxAreas:        10,
	SystemArea:      false,
	ItemFloor:       1,
	SystemItemFloor: 1,
	ItemCeiling:     99,
}

// LayoutByName resolves a layout from its configuration name.
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "", "alt1":
		return Alternative1, nil
	case "standard":
		return Standard, nil
	case "simple":
		return Simple, nil
	default:
		return Layout{}, &ConfigError{Reason: fmt.Sprintf("unknown layout %q", name)}
	}
}

// Capacity returns the number of assignable item IDs in one category.
func (l Layout) Capacity(category int) int {
	return l.ItemCeiling - l.floor(category) + 1
}

// floor returns the first assignable sequence number for a category.
func (l Layout) floor(category int) int {
	if l.SystemArea && IsSystemCategory(category) {
		return l.SystemItemFloor
	}
	return l.ItemFloor
}
