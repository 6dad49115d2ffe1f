// Package sanitize turns free text (AI descriptions, original file
// names) into filesystem-safe token sequences of bounded length.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	extensionSuffix = regexp.MustCompile(`\.\w{1,4}$`)
	camelBoundary   = regexp.MustCompile(`([a-z])([A-Z])`)
)

// stopwords are dropped from cleaned output: English function words
// plus the filler vocabulary AI models tend to produce when describing
// files ("depicts", "image", "filename", ...).
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "that": true, "the": true, "this": true, "to": true, "was": true,
	"were": true, "will": true, "with": true, "my": true, "your": true,

	"based": true, "generated": true, "filename": true, "file": true,
	"image": true, "picture": true, "photo": true, "folder": true,
	"category": true, "output": true, "only": true, "below": true,
	"text": true, "jpg": true, "png": true, "jpeg": true, "gif": true,
	"bmp": true, "svg": true, "main": true, "subject": true,
	"important": true, "details": true, "description": true,
	"depicts": true, "show": true, "shows": true, "display": true,
	"illustrates": true, "presents": true, "features": true,
	"provides": true, "covers": true, "includes": true,
	"demonstrates": true, "describes": true,
}

// Clean converts text into at most maxWords lowercase words joined by
// underscores. Extensions, digits, punctuation, stopwords, and
// duplicate words are removed; concatenated words ("GoogleChrome") are
// split at case boundaries. Deterministic, returns "" when nothing
// survives.
func Clean(text string, maxWords int) string {
	text = extensionSuffix.ReplaceAllString(text, "")
	text = camelBoundary.ReplaceAllString(text, "$1 $2")

	// Everything that is not a letter becomes a word boundary.
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(' ')
		}
	}

	seen := make(map[string]bool)
	var words []string
	for _, w := range strings.Fields(b.String()) {
		if stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
		if len(words) == maxWords {
			break
		}
	}

	return strings.Join(words, "_")
}
