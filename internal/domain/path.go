package domain

import (
	"fmt"
	"path/filepath"
)

// SystemAreaLabel is the fixed folder label for the system area; it
// renders as a literal instead of a numeric range.
const SystemAreaLabel = "00-09 System"

// FallbackDescription substitutes for an empty sanitized description.
const FallbackDescription = "item"

// AreaFolder renders the folder label for an area, e.g. "20-29 Work".
func AreaFolder(area int, name string) string {
	if area == SystemArea {
		return SystemAreaLabel
	}
	return fmt.Sprintf("%d-%d %s", area, area+9, name)
}

// CategoryFolder renders the folder label for a category, e.g.
// "22 Admin". System categories are zero-padded ("05 Health management")
// so they sort correctly inside the system area.
func CategoryFolder(category int, name string) string {
	if IsSystemCategory(category) {
		return fmt.Sprintf("%02d %s", category, name)
	}
	return fmt.Sprintf("%d %s", category, name)
}

// FolderPath renders the relative folder path for a category, e.g.
// "20-29 Work/22 Admin".
func FolderPath(area int, areaName string, category int, categoryName string) string {
	return filepath.Join(AreaFolder(area, areaName), CategoryFolder(category, categoryName))
}

// FileName renders the destination file name for an assigned ID. The
// description is expected to be sanitized already; an empty one falls
// back to a fixed placeholder. The original extension is preserved
// verbatim, case included.
func FileName(id ID, description, ext string) string {
	if description == "" {
		description = FallbackDescription
	}
	return fmt.Sprintf("%s %s%s", id, description, ext)
}
