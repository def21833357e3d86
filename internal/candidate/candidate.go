// Package candidate holds the immutable per-identifier record the matcher
// scores against: the identifier text, its word-boundary characters and its
// letter presence bitset. Records are built once when an identifier enters
// the database and shared read-only across queries, so scoring can run in
// parallel without synchronization.
package candidate

import (
	"github.com/standardbeagle/idcomplete/internal/chars"
)

// Candidate is a precomputed identifier record. It is write-once: every
// field derives from the text at construction and is never mutated.
type Candidate struct {
	text         string
	wordBoundary string
	letters      chars.LetterBitset
}

// New builds a Candidate with all precomputed fields.
func New(text string) *Candidate {
	return &Candidate{
		text:         text,
		wordBoundary: WordBoundaryChars(text),
		letters:      chars.NewLetterBitset(text),
	}
}

// Text returns the original identifier text.
func (c *Candidate) Text() string {
	return c.text
}

// Len returns the number of characters in the identifier.
func (c *Candidate) Len() int {
	return len(c.text)
}

// WordBoundaryChars returns the identifier's word-boundary characters in
// order. They form a subsequence of the text.
func (c *Candidate) WordBoundaryChars() string {
	return c.wordBoundary
}

// Letters returns the identifier's letter presence bitset.
func (c *Candidate) Letters() chars.LetterBitset {
	return c.letters
}

// WordBoundaryChars collects the characters that begin a word inside an
// identifier: the first character unless it is punctuation, each uppercase
// letter following a non-uppercase character, and each letter following
// punctuation. This picks out the salient heads of camelCase, PascalCase,
// snake_case, kebab-case and dotted names.
func WordBoundaryChars(text string) string {
	if len(text) == 0 {
		return ""
	}

	result := make([]byte, 0, 8)
	if !chars.IsPunctuation(text[0]) {
		result = append(result, text[0])
	}

	for i := 1; i < len(text); i++ {
		caseBoundary := chars.IsUppercase(text[i]) && !chars.IsUppercase(text[i-1])
		punctBoundary := chars.IsPunctuation(text[i-1]) && chars.IsLetter(text[i])
		if caseBoundary || punctBoundary {
			result = append(result, text[i])
		}
	}

	return string(result)
}
