package ports

import "ordino/internal/domain"

// CatalogIndex persists JDex entries for human reference. Purely
// descriptive output: the allocator never reads entries back, and each
// organizing run starts from an empty allocation state regardless of
// what the index contains.
type CatalogIndex interface {
	Open(path string) error
	Close() error

	// Record stores one entry; called once per assigned ID.
	Record(entry domain.IndexEntry) error

	// Entries returns all stored entries, oldest first.
	Entries() ([]domain.IndexEntry, error)
}
