package indexcore

import (
	"os"
	"sort"

	"github.com/benjamix95/codigo-sub004/internal/classify"
	"github.com/benjamix95/codigo-sub004/internal/display"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

// readFile re-reads a file's bytes; used by FindReferences's scan, which
// needs source text that IndexedFile intentionally does not retain.
func readFile(absPath string) (string, error) {
	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// langOf derives a FileNode's language tag from its extension.
func langOf(node *types.FileNode) types.Language {
	return classify.FromExtension(node.Extension)
}

// FileOutline renders the named file's IndexedFile via the display
// package. Returns ok=false when the exact path is not indexed; callers
// that want a fuzzy fallback do that themselves via FindFiles.
func (c *Core) FileOutline(relativePath string) (string, bool) {
	c.mu.Lock()
	file, ok := c.indexed[relativePath]
	c.mu.Unlock()
	if !ok {
		return "", false
	}
	return display.FileOutline(&file), true
}

// ProjectTree renders every current workspace root via the display
// package.
func (c *Core) ProjectTree(maxDepth, maxFiles int, includeHidden bool) string {
	c.mu.Lock()
	roots := make([]*types.FileNode, 0, len(c.fileTrees))
	for _, absRoot := range sortedKeys(c.fileTrees) {
		roots = append(roots, c.fileTrees[absRoot])
	}
	c.mu.Unlock()

	return display.ProjectTree(roots, display.ProjectTreeOptions{
		MaxDepth:      maxDepth,
		MaxFiles:      maxFiles,
		IncludeHidden: includeHidden,
	})
}

func sortedKeys(m map[string]*types.FileNode) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
