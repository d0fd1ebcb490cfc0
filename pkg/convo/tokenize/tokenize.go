// Package tokenize turns raw message text into word-level units. It
// carries three policies: plain whitespace splitting for frequency
// counting, an aggressive clean-and-filter pass for stopword-aware
// counting, and a lowercased alphanumeric-run scanner shared by the
// vectorizers.
package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/dmaynor/llm-convo/pkg/convo/stoplist"
)

// Split returns the whitespace-delimited words of text.
func Split(text string) []string {
	return strings.Fields(text)
}

// CleanAndFilter normalizes whitespace-split words: strips every
// non-alphabetic character, lowercases, and drops words that end up with
// fewer than two letters or that appear in stops. stops may be nil.
func CleanAndFilter(words []string, stops *stoplist.Set) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		clean := cleanWord(word)
		if len(clean) <= 1 {
			continue
		}
		if stops != nil && stops.Has(clean) {
			continue
		}
		out = append(out, clean)
	}
	return out
}

// cleanWord keeps only ASCII letters, lowercased. Multi-language
// normalization is out of scope, matching the alphabetic-only contract.
func cleanWord(word string) string {
	var b strings.Builder
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// Terms lowercases text and returns every run of two or more letters or
// digits. This is the token unit for vocabulary construction: punctuation
// splits tokens and single-character runs are discarded.
func Terms(text string) []string {
	var terms []string
	var current strings.Builder
	runes := 0

	flush := func() {
		if runes >= 2 {
			terms = append(terms, current.String())
		}
		current.Reset()
		runes = 0
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(unicode.ToLower(r))
			runes++
		} else {
			flush()
		}
	}
	flush()

	return terms
}

// StripHTML reduces markup to its text content. Plain text passes through
// unchanged apart from trimming; unparseable input falls back to the
// original string.
func StripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
