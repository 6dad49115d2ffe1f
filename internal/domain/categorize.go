package domain

import (
	"path/filepath"
	"strings"
)

// NoHint is passed to Suggest when the caller has no explicit category.
const NoHint = -1

// Suggestion is the outcome of categorizing one file.
type Suggestion struct {
	Area         int
	Category     int
	CategoryName string
}

// keywordRule maps a content/filename keyword to a category. Rules are
// scanned in order and the first match wins, so the table order is part
// of the behavior.
type keywordRule struct {
	keyword  string
	category int
}

// extensionRule maps a file extension (including the dot, lowercase) to
// a category.
type extensionRule struct {
	ext      string
	category int
}

// defaultKeywordRules targets the default category set. The ordering
// follows the original suggestion table: finance first, then health,
// identity, household, travel, online, work, projects.
var defaultKeywordRules = []keywordRule{
	{"bank", 12}, {"money", 12}, {"finance", 12}, {"tax", 12}, {"insurance", 12},
	{"health", 15}, {"medical", 15}, {"fitness", 15}, {"doctor", 15},
	{"passport", 10}, {"personal", 10}, {"identity", 10},
	{"house", 11}, {"home", 11}, {"utilities", 11}, {"mortgage", 11},
	{"travel", 14}, {"trip", 14}, {"vacation", 14}, {"flight", 14}, {"hotel", 14},
	{"subscription", 13}, {"account", 13}, {"login", 13}, {"online", 13},
	{"work", 20}, {"project", 20}, {"client", 22}, {"meeting", 21}, {"admin", 21},
	{"hobby", 30}, {"learning", 31}, {"creative", 30}, {"side", 30},
}

// defaultExtensionRules is the fallback when no keyword matches:
// documents to work admin, spreadsheets to money, media and code to the
// project categories.
var defaultExtensionRules = []extensionRule{
	{".pdf", 21}, {".doc", 21}, {".docx", 21}, {".txt", 21}, {".md", 21},
	{".xls", 12}, {".xlsx", 12}, {".csv", 12},
	{".ppt", 20}, {".pptx", 20},
	{".png", 30}, {".jpg", 30}, {".jpeg", 30}, {".gif", 30}, {".bmp", 30}, {".tiff", 30},
	{".mp3", 30}, {".wav", 30}, {".m4a", 30}, {".flac", 30},
	{".mp4", 30}, {".mov", 30}, {".avi", 30}, {".mkv", 30},
	{".go", 31}, {".py", 31}, {".js", 31}, {".ipynb", 31},
}

// Categorizer selects an area/category pair for a file from its path
// and an optional content description. It is a pure function over the
// registry and its rule tables; it never mutates anything.
type Categorizer struct {
	registry   *Registry
	keywords   []keywordRule
	extensions []extensionRule
}

// NewCategorizer builds a categorizer with the default rule tables.
// Rules pointing at categories the registry does not define are skipped
// at match time, so the same tables work with customized registries.
func NewCategorizer(r *Registry) *Categorizer {
	return &Categorizer{
		registry:   r,
		keywords:   defaultKeywordRules,
		extensions: defaultExtensionRules,
	}
}

// Suggest categorizes one file. Priority order:
//
//  1. an explicit hint that exists in the registry (pass NoHint to skip)
//  2. first keyword found in the description or file basename
//  3. extension table
//  4. smallest regular category in the smallest area
func (c *Categorizer) Suggest(filePath, description string, hint int) Suggestion {
	if hint != NoHint {
		if name, ok := c.registry.CategoryName(hint); ok {
			return Suggestion{Area: AreaOf(hint), Category: hint, CategoryName: name}
		}
	}

	// Description takes priority over the filename, so it comes first
	// in the searched text.
	text := strings.ToLower(description) + " " + strings.ToLower(filepath.Base(filePath))
	for _, rule := range c.keywords {
		if !c.registry.HasCategory(rule.category) {
			continue
		}
		if strings.Contains(text, rule.keyword) {
			name, _ := c.registry.CategoryName(rule.category)
			return Suggestion{Area: AreaOf(rule.category), Category: rule.category, CategoryName: name}
		}
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	for _, rule := range c.extensions {
		if rule.ext != ext {
			continue
		}
		if name, ok := c.registry.CategoryName(rule.category); ok {
			return Suggestion{Area: AreaOf(rule.category), Category: rule.category, CategoryName: name}
		}
	}

	if area, cat, name, ok := c.registry.DefaultCategory(); ok {
		return Suggestion{Area: area, Category: cat, CategoryName: name}
	}

	// A registry with no regular categories at all; keep the result
	// deterministic anyway.
	return Suggestion{Area: 10, Category: 10, CategoryName: "Me"}
}
