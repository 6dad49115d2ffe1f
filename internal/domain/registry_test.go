package domain

import (
	"errors"
	"testing"
)

func TestNewRegistry_Defaults(t *testing.T) {
	r, err := NewRegistry(Alternative1, nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if _, ok := r.AreaName(10); !ok {
		t.Error("default area 10 missing")
	}
	if name, _ := r.CategoryName(12); name != "Money" {
		t.Errorf("category 12 = %q, want Money", name)
	}
	if name, ok := r.AreaName(SystemArea); !ok || name != "System" {
		t.Errorf("system area name = %q (ok=%v), want System", name, ok)
	}
}

func TestNewRegistry_TooManyAreas(t *testing.T) {
	areas := map[int]string{}
	for a := 10; a <= 90; a += 10 {
		areas[a] = "Area"
	}
	// Nine areas is the Alternative 1 maximum; this is fine.
	if _, err := NewRegistry(Alternative1, areas, map[int]string{10: "Me"}); err != nil {
		t.Fatalf("nine areas should be valid: %v", err)
	}

	layout := Alternative1
	layout.MaxAreas = 8
	_, err := NewRegistry(layout, areas, map[int]string{10: "Me"})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestNewRegistry_InvalidAreaNumber(t *testing.T) {
	for _, area := range []int{5, 15, 100, -10} {
		_, err := NewRegistry(Alternative1, map[int]string{area: "Bad"}, map[int]string{})
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("area %d: expected ErrConfiguration, got %v", area, err)
		}
	}
}

func TestAddCategory_UndefinedArea(t *testing.T) {
	r, err := NewRegistry(Alternative1, map[int]string{10: "Life"}, map[int]string{10: "Me"})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if err := r.AddCategory(45, "Orphan"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for category without area, got %v", err)
	}
	if err := r.AddCategory(14, "Travel"); err != nil {
		t.Errorf("category 14 in area 10 should be valid: %v", err)
	}
}

func TestAddCategory_SystemRequiresSystemArea(t *testing.T) {
	r, err := NewRegistry(Standard, map[int]string{10: "Life"}, map[int]string{10: "Me"})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if err := r.AddCategory(3, "Management"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for system category without system area, got %v", err)
	}
}

func TestCategoriesForArea_RangeMembership(t *testing.T) {
	r, err := NewRegistry(Alternative1, nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	// Every category returned for an area must lie within that area's
	// ten-range.
	for area := range r.Areas() {
		for cat := range r.CategoriesForArea(area) {
			if cat < area || cat > area+9 {
				t.Errorf("category %d outside range of area %d", cat, area)
			}
		}
	}

	for cat := range r.SystemCategories() {
		if !IsSystemCategory(cat) {
			t.Errorf("system category %d outside 0-9", cat)
		}
	}
}

func TestAreaManagementCategory(t *testing.T) {
	r, err := NewRegistry(Alternative1, nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	cat, ok := r.AreaManagementCategory(20)
	if !ok || cat != 2 {
		t.Errorf("management category for area 20 = %d (ok=%v), want 2", cat, ok)
	}
	if _, ok := r.AreaManagementCategory(40); ok {
		t.Error("area 40 has no management category defined")
	}
	if _, ok := r.AreaManagementCategory(15); ok {
		t.Error("15 is not an area number")
	}
}

func TestDefaultCategory(t *testing.T) {
	r, err := NewRegistry(Alternative1, nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	area, cat, name, ok := r.DefaultCategory()
	if !ok {
		t.Fatal("expected a default category")
	}
	if area != 10 || cat != 10 || name != "Me" {
		t.Errorf("default = (%d, %d, %q), want (10, 10, Me)", area, cat, name)
	}
}

func TestLayoutByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "alt1", false},
		{"alt1", "alt1", false},
		{"standard", "standard", false},
		{"simple", "simple", false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		layout, err := LayoutByName(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("LayoutByName(%q): expected ErrConfiguration, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("LayoutByName(%q) failed: %v", tt.name, err)
			continue
		}
		if layout.Name != tt.want {
			t.Errorf("LayoutByName(%q) = %s, want %s", tt.name, layout.Name, tt.want)
		}
	}
}
