// Package classify implements FileClassifier: pure functions mapping a file
// extension to a language tag and exposing per-language metadata.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/types"
)

// FromPath derives the language tag for a file path by its extension.
func FromPath(path string) types.Language {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return FromExtension(ext)
}

// FromExtension lowercases ext and returns its language tag via the
// extension table, or LangUnknown.
func FromExtension(ext string) types.Language {
	return types.FromExtension(ext)
}

// LineComment returns tag's line-comment prefix, if any.
func LineComment(tag types.Language) (string, bool) {
	return types.LineComment(tag)
}

// BlockCommentDelimiters returns tag's block comment open/close pair, if any.
func BlockCommentDelimiters(tag types.Language) (open, close string, ok bool) {
	return types.BlockCommentDelimiters(tag)
}

// CanonicalExtensions returns the ordered extension list registered for tag.
func CanonicalExtensions(tag types.Language) []string {
	return types.CanonicalExtensions(tag)
}

// IsExtractorEligible reports whether a SymbolExtractor exists for tag.
func IsExtractorEligible(tag types.Language) bool {
	return types.IsExtractorEligible(tag)
}

// Extension lowercases and returns the bare extension (no dot) of path.
func Extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
