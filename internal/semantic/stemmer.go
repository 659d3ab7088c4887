package semantic

import (
	"strings"

	"github.com/surgebase/porter2"
)

// Stemmer normalizes words to their Porter2 stem, so that different
// inflections of the same word (authenticate, authentication,
// authenticating) compare equal in SemanticGrep's substring widening.
type Stemmer struct {
	enabled    bool
	algorithm  string
	minLength  int
	exclusions map[string]bool // words to never stem
}

// NewStemmer creates a new stemmer with configuration.
func NewStemmer(enabled bool, algorithm string, minLength int, exclusions map[string]bool) *Stemmer {
	if algorithm == "" {
		algorithm = "porter2"
	}
	if minLength < 0 {
		minLength = 3
	}
	if exclusions == nil {
		exclusions = make(map[string]bool)
	}
	return &Stemmer{
		enabled:    enabled,
		algorithm:  algorithm,
		minLength:  minLength,
		exclusions: exclusions,
	}
}

// Stem returns the stem of a word, or the original word if stemming is
// disabled, the word is excluded, or it is shorter than minLength.
func (s *Stemmer) Stem(word string) string {
	if !s.enabled {
		return word
	}
	if s.exclusions[strings.ToLower(word)] {
		return word
	}
	if len(word) < s.minLength {
		return word
	}
	if s.algorithm == "none" {
		return word
	}
	return porter2.Stem(word)
}

// StemAll applies Stem to every word in words.
func (s *Stemmer) StemAll(words []string) []string {
	if !s.enabled {
		return words
	}
	result := make([]string, 0, len(words))
	for _, word := range words {
		result = append(result, s.Stem(word))
	}
	return result
}

// DefaultSemanticGrepStemmer is the package-level stemmer SemanticGrep uses
// to widen its substring test: always on, Porter2, no exclusions.
var DefaultSemanticGrepStemmer = NewStemmer(true, "porter2", 3, nil)

// StemmedContains reports whether every whitespace-delimited token of
// query, after stemming, has a matching stemmed token in text. An additive
// widening of a literal substring test; it never narrows a match.
func StemmedContains(s *Stemmer, query, text string) bool {
	queryTokens := s.StemAll(strings.Fields(strings.ToLower(query)))
	if len(queryTokens) == 0 {
		return false
	}
	textStems := make(map[string]bool)
	for _, tok := range s.StemAll(strings.Fields(strings.ToLower(text))) {
		textStems[tok] = true
	}
	for _, qt := range queryTokens {
		if !textStems[qt] {
			return false
		}
	}
	return true
}
