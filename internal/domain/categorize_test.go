package domain

import "testing"

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(Alternative1, nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return r
}

func TestSuggest_KeywordMatch(t *testing.T) {
	c := NewCategorizer(testRegistry(t))

	// "bank" hits before the extension table is ever consulted, even
	// though .pdf has its own entry there.
	got := c.Suggest("bank_statement.pdf", "my bank statement for March", NoHint)
	if got.Category != 12 || got.Area != 10 {
		t.Errorf("got %+v, want category 12 in area 10", got)
	}
	if got.CategoryName != "Money" {
		t.Errorf("category name = %q, want Money", got.CategoryName)
	}
}

func TestSuggest_KeywordFromFilename(t *testing.T) {
	c := NewCategorizer(testRegistry(t))

	// No description: the basename alone carries the keyword.
	got := c.Suggest("/inbox/flight-confirmation.pdf", "", NoHint)
	if got.Category != 14 {
		t.Errorf("got category %d, want 14 (Travel)", got.Category)
	}
}

func TestSuggest_ExtensionFallback(t *testing.T) {
	c := NewCategorizer(testRegistry(t))

	got := c.Suggest("diagram.png", "", NoHint)
	if got.Category != 30 || got.Area != 30 {
		t.Errorf("got %+v, want category 30 in area 30", got)
	}
}

func TestSuggest_FullFallback(t *testing.T) {
	c := NewCategorizer(testRegistry(t))

	got := c.Suggest("mystery.xyz", "", NoHint)
	if got.Area != 10 || got.Category != 10 || got.CategoryName != "Me" {
		t.Errorf("got %+v, want the default (10, 10, Me)", got)
	}
}

func TestSuggest_ExplicitHint(t *testing.T) {
	c := NewCategorizer(testRegistry(t))

	// A valid hint wins over everything, including keywords.
	got := c.Suggest("bank_statement.pdf", "my bank statement", 31)
	if got.Category != 31 || got.CategoryName != "Learning" {
		t.Errorf("got %+v, want hinted category 31", got)
	}

	// An unknown hint falls through to the heuristics.
	got = c.Suggest("bank_statement.pdf", "my bank statement", 87)
	if got.Category != 12 {
		t.Errorf("got category %d, want keyword match 12", got.Category)
	}
}

func TestSuggest_TableOrderSignificant(t *testing.T) {
	c := NewCategorizer(testRegistry(t))

	// "tax" precedes "home" in the table; with both present the first
	// rule wins regardless of word position in the text.
	got := c.Suggest("notes.txt", "home improvement tax deduction", NoHint)
	if got.Category != 12 {
		t.Errorf("got category %d, want 12 (tax outranks home)", got.Category)
	}
}

func TestSuggest_SkipsUndefinedCategories(t *testing.T) {
	// A registry without the finance category: the "bank" rule is
	// skipped and the next applicable rule or fallback applies.
	r, err := NewRegistry(Alternative1,
		map[int]string{10: "Life admin"},
		map[int]string{10: "Me", 11: "House"})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	c := NewCategorizer(r)

	got := c.Suggest("doc.xyz", "bank statement for the house", NoHint)
	if got.Category != 11 {
		t.Errorf("got category %d, want 11 (house, since 12 is undefined)", got.Category)
	}
}

func TestSuggest_Idempotent(t *testing.T) {
	c := NewCategorizer(testRegistry(t))

	files := []struct{ path, desc string }{
		{"bank_statement.pdf", "my bank statement for March"},
		{"diagram.png", ""},
		{"mystery.xyz", ""},
		{"itinerary.docx", "vacation plans for the trip to Rome"},
	}

	for _, f := range files {
		first := c.Suggest(f.path, f.desc, NoHint)
		for i := 0; i < 3; i++ {
			if again := c.Suggest(f.path, f.desc, NoHint); again != first {
				t.Errorf("%s: suggestion changed between runs: %+v vs %+v", f.path, first, again)
			}
		}
	}
}
