package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"ordino/internal/domain"
)

func TestIndex_RecordAndEntries(t *testing.T) {
	idx := NewIndex()
	if err := idx.Open(filepath.Join(t.TempDir(), "jdex.db")); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer idx.Close()

	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	first := domain.NewIndexEntry(domain.ID{Category: 12, Sequence: 10},
		"bank_statement_march", "/out/10-19 Life admin/12 Money/12.10 bank_statement_march.pdf", created)
	second := domain.NewIndexEntry(domain.ID{Category: 14, Sequence: 10},
		"flight_itinerary", "/out/10-19 Life admin/14 Travel/14.10 flight_itinerary.pdf", created)

	if err := idx.Record(first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := idx.Record(second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := idx.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != "12.10" || entries[1].ID != "14.10" {
		t.Errorf("entries out of order: %s, %s", entries[0].ID, entries[1].ID)
	}
	if entries[0].Title != "12.10 bank_statement_march" {
		t.Errorf("title = %q", entries[0].Title)
	}
	if !entries[0].Created.Equal(created) {
		t.Errorf("created = %v, want %v", entries[0].Created, created)
	}
}
