package domain

import (
	"fmt"
	"time"
)

// LinkType selects how the execution stage places a file at its
// destination.
type LinkType string

const (
	LinkHard LinkType = "hardlink"
	LinkSym  LinkType = "symlink"
)

// Operation is one planned file placement. The planner only produces
// these records; an execution adapter performs the actual linking.
type Operation struct {
	Source      string
	Destination string
	Link        LinkType
	FolderName  string // relative folder path under the output root
	NewFileName string
	ID          ID
	Index       IndexEntry
}

// IndexEntry is a denormalized JDex record generated per assigned ID,
// for human reference only. The core never reads it back.
type IndexEntry struct {
	ID          string
	Title       string
	Location    string
	Description string
	Created     time.Time
	Notes       string
}

// NewIndexEntry builds the JDex entry for an assigned ID.
func NewIndexEntry(id ID, description, location string, created time.Time) IndexEntry {
	return IndexEntry{
		ID:          id.String(),
		Title:       fmt.Sprintf("%s %s", id, description),
		Location:    "File system: " + location,
		Description: description,
		Created:     created,
		Notes:       "Add any additional notes about this item here.",
	}
}
