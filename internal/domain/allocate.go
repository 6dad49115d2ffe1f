package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ID is one assigned Johnny Decimal identifier: a category plus a
// two-digit sequence number, rendered as "12.34".
type ID struct {
	Category int
	Sequence int
}

func (id ID) String() string {
	return fmt.Sprintf("%d.%02d", id.Category, id.Sequence)
}

// ParseID parses an ID string produced by ID.String.
func ParseID(s string) (ID, error) {
	cat, seq, ok := strings.Cut(s, ".")
	if !ok {
		return ID{}, fmt.Errorf("invalid ID: %s", s)
	}
	c, err := strconv.Atoi(cat)
	if err != nil {
		return ID{}, fmt.Errorf("invalid ID: %s", s)
	}
	n, err := strconv.Atoi(seq)
	if err != nil {
		return ID{}, fmt.Errorf("invalid ID: %s", s)
	}
	return ID{Category: c, Sequence: n}, nil
}

// Allocator hands out item IDs within categories for the lifetime of
// one organizing run. Numbers are monotonically increasing per category
// and never reused, even when lower numbers were skipped by the floor.
//
// Each run builds its own allocator; state is never shared between runs
// (this stands in for the JDex, which a real system would consult).
type Allocator struct {
	layout   Layout
	assigned map[string]struct{}
}

// NewAllocator creates an empty allocator for the given layout.
func NewAllocator(layout Layout) *Allocator {
	return &Allocator{
		layout:   layout,
		assigned: make(map[string]struct{}),
	}
}

// Next computes the next free sequence number in the category, records
// it, and returns the resulting ID. Returns an ExhaustedError once the
// category's ceiling has been passed.
func (a *Allocator) Next(category int) (ID, error) {
	floor := a.layout.floor(category)
	prefix := strconv.Itoa(category) + "."

	// Highest already-assigned number in this category. Scanning the
	// set keeps the allocator independent of any assignment order.
	max := floor - 1
	for assigned := range a.assigned {
		if !strings.HasPrefix(assigned, prefix) {
			continue
		}
		n, err := strconv.Atoi(assigned[len(prefix):])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	next := max + 1
	if next < floor {
		next = floor
	}
	if next > a.layout.ItemCeiling {
		return ID{}, &ExhaustedError{Category: category, Ceiling: a.layout.ItemCeiling}
	}

	id := ID{Category: category, Sequence: next}
	a.assigned[id.String()] = struct{}{}
	return id, nil
}

// Assigned returns all IDs handed out so far, sorted.
func (a *Allocator) Assigned() []string {
	out := make([]string, 0, len(a.assigned))
	for id := range a.assigned {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Count returns how many IDs have been assigned in this run.
func (a *Allocator) Count() int {
	return len(a.assigned)
}
