package domain

import (
	"fmt"
	"maps"
	"slices"
)

// SystemArea is the area number reserved for system management in
// layouts that have one (00-09).
const SystemArea = 0

// IsSystemCategory reports whether a category number belongs to the
// system area.
func IsSystemCategory(category int) bool {
	return category >= 0 && category <= 9
}

// AreaOf returns the owning area for a category number. System
// categories (0-9) belong to the system area.
func AreaOf(category int) int {
	if IsSystemCategory(category) {
		return SystemArea
	}
	return (category / 10) * 10
}

// Registry holds the area and category definitions for one organizing
// run and enforces the structural rules of the configured layout.
type Registry struct {
	layout     Layout
	areas      map[int]string
	categories map[int]string
}

// DefaultAreas returns the starter area set. Users are expected to
// customize these.
func DefaultAreas() map[int]string {
	return map[int]string{
		10: "Life admin",
		20: "Work",
		30: "Projects",
	}
}

// DefaultCategories returns the starter category set matching
// DefaultAreas, including the system-area management categories used by
// the Alternative 1 layout.
func DefaultCategories() map[int]string {
	return map[int]string{
		// System area (00-09) management
		0: "System management",
		1: "Life admin management",
		2: "Work management",
		3: "Projects management",

		// Life admin (10-19)
		10: "Me",
		11: "House",
		12: "Money",
		13: "Online",
		14: "Travel",
		15: "Health",

		// Work (20-29)
		20: "Current work",
		21: "Admin",
		22: "Clients",

		// Projects (30-39)
		30: "Active",
		31: "Learning",
	}
}

// NewRegistry builds a registry for the given layout. Nil areas or
// categories fall back to the built-in defaults. Returns a ConfigError
// when the definitions violate the layout's rules.
func NewRegistry(layout Layout, areas, categories map[int]string) (*Registry, error) {
	if areas == nil {
		areas = DefaultAreas()
	}
	if categories == nil {
		categories = DefaultCategories()
	}

	if len(areas) > layout.MaxAreas {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("layout %s allows at most %d areas, got %d", layout.Name, layout.MaxAreas, len(areas)),
		}
	}

	r := &Registry{
		layout:     layout,
		areas:      make(map[int]string, len(areas)),
		categories: make(map[int]string, len(categories)),
	}

	for _, area := range slices.Sorted(maps.Keys(areas)) {
		if area%10 != 0 || area < 10 || area > 90 {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("area number %d invalid: must be 10, 20, ..., 90", area),
			}
		}
		r.areas[area] = areas[area]
	}

	for _, cat := range slices.Sorted(maps.Keys(categories)) {
		if err := r.AddCategory(cat, categories[cat]); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Layout returns the layout this registry was built with.
func (r *Registry) Layout() Layout {
	return r.layout
}

// AddCategory registers a category under its implied parent area.
// Returns a ConfigError when the parent area is undefined or the number
// falls outside the area's reserved range.
func (r *Registry) AddCategory(category int, name string) error {
	if IsSystemCategory(category) {
		if !r.layout.SystemArea {
			return &ConfigError{
				Reason: fmt.Sprintf("category %d requires a system area, which layout %s does not have", category, r.layout.Name),
			}
		}
		r.categories[category] = name
		return nil
	}

	area := AreaOf(category)
	if _, ok := r.areas[area]; !ok {
		return &ConfigError{Reason: fmt.Sprintf("area %d not defined for category %d", area, category)}
	}
	if category < area || category > area+9 {
		return &ConfigError{
			Reason: fmt.Sprintf("category %d not in valid range for area %d", category, area),
		}
	}

	r.categories[category] = name
	return nil
}

// HasCategory reports whether the category number is defined.
func (r *Registry) HasCategory(category int) bool {
	_, ok := r.categories[category]
	return ok
}

// CategoryName returns the display name for a category.
func (r *Registry) CategoryName(category int) (string, bool) {
	name, ok := r.categories[category]
	return name, ok
}

// AreaName returns the display name for an area. The system area has a
// fixed name.
func (r *Registry) AreaName(area int) (string, bool) {
	if area == SystemArea && r.layout.SystemArea {
		return "System", true
	}
	name, ok := r.areas[area]
	return name, ok
}

// Areas returns a copy of the user-defined areas (the system area is
// excluded; it is implied by the layout).
func (r *Registry) Areas() map[int]string {
	return maps.Clone(r.areas)
}

// CategoriesForArea returns all categories whose number lies within the
// area's range. Passing SystemArea returns the system categories.
func (r *Registry) CategoriesForArea(area int) map[int]string {
	out := make(map[int]string)
	for cat, name := range r.categories {
		if AreaOf(cat) == area {
			out[cat] = name
		}
	}
	return out
}

// SystemCategories returns the management categories in the system
// area (00-09).
func (r *Registry) SystemCategories() map[int]string {
	return r.CategoriesForArea(SystemArea)
}

// AreaManagementCategory returns the system-area category that manages
// the given area (area 10-19 -> category 1, 20-29 -> 2, ...), if defined.
func (r *Registry) AreaManagementCategory(area int) (int, bool) {
	if area < 10 || area > 90 || area%10 != 0 {
		return 0, false
	}
	cat := area / 10
	_, ok := r.categories[cat]
	return cat, ok
}

// DefaultCategory returns the numerically smallest regular category in
// the smallest defined area: the deterministic fallback when no
// heuristic matches.
func (r *Registry) DefaultCategory() (area, category int, name string, ok bool) {
	best := -1
	for cat := range r.categories {
		if IsSystemCategory(cat) {
			continue
		}
		if best == -1 || cat < best {
			best = cat
		}
	}
	if best == -1 {
		return 0, 0, "", false
	}
	return AreaOf(best), best, r.categories[best], true
}
