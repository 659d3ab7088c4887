// Package pathutil converts between the absolute paths IndexCore tracks
// internally and the workspace-relative, forward-slash paths every query
// response and tool argument uses. Conversion is lossless in the fallback
// direction: a path that cannot be made relative (outside the root, or
// already relative) passes through unchanged.
package pathutil

import (
	"path/filepath"
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/types"
)

// ToRelative rewrites absPath relative to rootDir, normalized to forward
// slashes. Paths outside rootDir, already-relative paths, and empty inputs
// are returned as-is.
func ToRelative(absPath, rootDir string) string {
	if absPath == "" || rootDir == "" {
		return absPath
	}

	if !filepath.IsAbs(absPath) {
		return absPath
	}

	absPath = filepath.Clean(absPath)
	rootDir = filepath.Clean(rootDir)

	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		return absPath
	}

	if strings.HasPrefix(relPath, "..") {
		return absPath
	}

	return filepath.ToSlash(relPath)
}

// ToRelativeSymbolReferences rewrites FilePath on each reference via
// ToRelative, returning a new slice. Used at output boundaries so a
// reference scan that picked up absolute paths never leaks them into tool
// responses.
func ToRelativeSymbolReferences(refs []types.SymbolReference, rootDir string) []types.SymbolReference {
	if len(refs) == 0 {
		return refs
	}

	converted := make([]types.SymbolReference, len(refs))
	copy(converted, refs)
	for i := range converted {
		converted[i].FilePath = ToRelative(converted[i].FilePath, rootDir)
	}
	return converted
}
