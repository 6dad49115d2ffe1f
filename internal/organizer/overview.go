package organizer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"ordino/internal/domain"
)

// Overview renders the configured Johnny Decimal structure as text:
// the system area first (when the layout has one), then each area with
// its categories.
func Overview(r *domain.Registry) string {
	var b strings.Builder
	layout := r.Layout()

	fmt.Fprintf(&b, "Layout: %s (%d areas max, %d IDs per category)\n\n",
		layout.Name, layout.MaxAreas, layout.Capacity(10))

	if layout.SystemArea {
		b.WriteString(domain.SystemAreaLabel + "\n")
		system := r.SystemCategories()
		for _, cat := range slices.Sorted(maps.Keys(system)) {
			fmt.Fprintf(&b, "  %s\n", domain.CategoryFolder(cat, system[cat]))
		}
		b.WriteString("\n")
	}

	areas := r.Areas()
	for _, area := range slices.Sorted(maps.Keys(areas)) {
		b.WriteString(domain.AreaFolder(area, areas[area]) + "\n")
		categories := r.CategoriesForArea(area)
		for _, cat := range slices.Sorted(maps.Keys(categories)) {
			fmt.Fprintf(&b, "  %s\n", domain.CategoryFolder(cat, categories[cat]))
		}
		b.WriteString("\n")
	}

	return b.String()
}
