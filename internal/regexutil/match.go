// Package regexutil implements the line-anchored regex helpers, block-end
// finders, content hash, fuzzy matcher, and glob matcher shared by every
// per-language symbol extractor.
package regexutil

import (
	"regexp"
	"sync"
)

// compiled caches multiline-compiled patterns; extractors call these helpers
// with a small, fixed set of literal patterns so the cache stays small. The
// cache is read from concurrent extractor workers, so it is guarded.
var compiled sync.Map // pattern string -> *regexp.Regexp

// mustCompile compiles pattern in multiline mode (^ and $ match at line
// boundaries), caching the result. A bad pattern panics (these are
// compile-time literals, never user input); callers with potentially-invalid
// patterns use the Compile wrapper instead.
func mustCompile(pattern string) *regexp.Regexp {
	if re, ok := compiled.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?m)` + pattern)
	compiled.Store(pattern, re)
	return re
}

// Compile compiles pattern in multiline mode without panicking, for callers
// that must treat an invalid pattern as a RegexCompileFailure: no match,
// not a fatal error.
func Compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?m)` + pattern)
}

// FirstMatch returns the first match of pattern in s, or ("", false).
func FirstMatch(pattern, s string) (string, bool) {
	re := mustCompile(pattern)
	m := re.FindString(s)
	if m == "" && !re.MatchString(s) {
		return "", false
	}
	return m, true
}

// MatchGroups returns the capture groups of the first match of pattern in
// s (index 0 is the whole match), or nil when there is no match. Unmatched
// optional groups yield "".
func MatchGroups(pattern, s string) []string {
	re := mustCompile(pattern)
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	return m
}

// MatchAll returns the Nth capture group (group index, 0 = whole match)
// across every match of pattern in s, in order.
func MatchAll(pattern, s string, group int) []string {
	re := mustCompile(pattern)
	matches := re.FindAllStringSubmatch(s, -1)
	if matches == nil {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if group < len(m) {
			out = append(out, m[group])
		} else {
			out = append(out, "")
		}
	}
	return out
}
