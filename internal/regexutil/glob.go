package regexutil

import "strings"

// GlobMatch implements the engine's restricted glob dialect: '*' as an
// intra-segment wildcard, a "**/" prefix meaning "at any depth", a "/**"
// suffix meaning "this path or anything under it", "**/*.ext"/"*.ext" as a
// pure extension test, and a substring-containment fallback for anything
// else. This is deliberately not a full glob implementation; richer
// exclusion globs go through doublestar in the filetree package instead.
func GlobMatch(pattern, path string) bool {
	if isExtensionPattern(pattern) {
		ext := extensionSuffix(pattern)
		return strings.HasSuffix(path, ext)
	}

	if strings.HasPrefix(pattern, "**/") {
		rest := pattern[len("**/"):]
		segs := strings.Split(path, "/")
		for i := range segs {
			if matchSegments(strings.Split(rest, "/"), segs[i:]) {
				return true
			}
		}
		return false
	}

	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	patSegs := strings.Split(pattern, "/")
	pathSegs := strings.Split(path, "/")
	if len(patSegs) == len(pathSegs) && matchSegments(patSegs, pathSegs) {
		return true
	}

	return strings.Contains(path, pattern)
}

// isExtensionPattern reports whether pattern is exactly "*.ext" or
// "**/*.ext", a pure extension test.
func isExtensionPattern(pattern string) bool {
	p := strings.TrimPrefix(pattern, "**/")
	if !strings.HasPrefix(p, "*.") {
		return false
	}
	rest := p[1:] // ".ext"
	if rest == "." || strings.Contains(rest, "*") || strings.Contains(rest, "/") {
		return false
	}
	return true
}

func extensionSuffix(pattern string) string {
	p := strings.TrimPrefix(pattern, "**/")
	return p[1:] // drop the leading '*', keep the leading '.'
}

func matchSegments(patSegs, pathSegs []string) bool {
	if len(patSegs) != len(pathSegs) {
		return false
	}
	for i := range patSegs {
		if !matchSegment(patSegs[i], pathSegs[i]) {
			return false
		}
	}
	return true
}

// matchSegment matches a single path segment against a pattern segment
// containing zero or more '*' wildcards (each '*' matches zero or more
// characters within the segment, never crossing a '/').
func matchSegment(pat, seg string) bool {
	if pat == "*" {
		return true
	}
	parts := strings.Split(pat, "*")
	if len(parts) == 1 {
		return pat == seg
	}
	pos := 0
	for i, part := range parts {
		if part == "" {
			continue
		}
		switch i {
		case 0:
			if !strings.HasPrefix(seg, part) {
				return false
			}
			pos = len(part)
		case len(parts) - 1:
			if !strings.HasSuffix(seg[pos:], part) {
				return false
			}
		default:
			idx := strings.Index(seg[pos:], part)
			if idx < 0 {
				return false
			}
			pos += idx + len(part)
		}
	}
	return true
}
