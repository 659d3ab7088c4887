// Package display renders IndexCore query results as the LLM-facing text
// formats the ToolFacade returns: per-file symbol outlines and
// whole-workspace directory trees.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/filetree"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const docPreviewLen = 100

// FileOutline renders file's symbols as a top-level list with nested
// members grouped under their container.
func FileOutline(file *types.IndexedFile) string {
	if file == nil {
		return "No outline available"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📄 %s (%s, %d lines)\n", file.RelativePath, file.Language, file.LineCount)

	if len(file.Imports) > 0 {
		fmt.Fprintf(&sb, "  Imports: %s\n", strings.Join(file.Imports, ", "))
	}
	sb.WriteString("\n")

	byContainer := make(map[string][]types.IndexedSymbol)
	var top []types.IndexedSymbol
	for _, sym := range file.Symbols {
		if sym.ContainerName == "" {
			top = append(top, sym)
		} else {
			byContainer[sym.ContainerName] = append(byContainer[sym.ContainerName], sym)
		}
	}

	for _, sym := range top {
		writeOutlineSymbol(&sb, sym, "  ")
		for _, member := range byContainer[sym.Name] {
			writeOutlineSymbol(&sb, member, "    ")
		}
	}

	return sb.String()
}

func writeOutlineSymbol(sb *strings.Builder, sym types.IndexedSymbol, indent string) {
	lineRange := fmt.Sprintf("L%d", sym.Line)
	if sym.EndLine > sym.Line {
		lineRange = fmt.Sprintf("L%d-%d", sym.Line, sym.EndLine)
	}

	staticTag := ""
	if sym.IsStatic {
		staticTag = "static "
	}
	fmt.Fprintf(sb, "%s[%s] %s%s %s (%s)\n", indent, sym.AccessLevel, staticTag, sym.Kind, sym.Name, lineRange)

	if sym.Kind.IsType() && len(sym.Inherits) > 0 {
		fmt.Fprintf(sb, "%s  : %s\n", indent, strings.Join(sym.Inherits, ", "))
	}
	if sym.Documentation != "" {
		doc := sym.Documentation
		r := []rune(doc)
		if len(r) > docPreviewLen {
			doc = string(r[:docPreviewLen])
		}
		fmt.Fprintf(sb, "%s  /// %s\n", indent, doc)
	}
}

// ProjectTreeOptions controls ProjectTree rendering.
type ProjectTreeOptions struct {
	MaxDepth      int
	MaxFiles      int
	IncludeHidden bool
}

// ProjectTree renders roots as box-drawing directory trees. Directories
// sort before files; both sort in natural (case-insensitive) order within
// their group. Hidden entries (dotfiles) are dropped unless
// opts.IncludeHidden is set.
func ProjectTree(roots []*types.FileNode, opts ProjectTreeOptions) string {
	var sb strings.Builder
	for _, root := range roots {
		fmt.Fprintf(&sb, "📁 %s/ (%d files)\n", root.Name, countFiles(root))
		writeTreeChildren(&sb, root.Children, "", 1, opts)
	}
	return sb.String()
}

func writeTreeChildren(sb *strings.Builder, children []*types.FileNode, prefix string, depth int, opts ProjectTreeOptions) {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return
	}

	visible := make([]*types.FileNode, 0, len(children))
	for _, c := range children {
		if !opts.IncludeHidden && strings.HasPrefix(c.Name, ".") {
			continue
		}
		visible = append(visible, c)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i], visible[j]
		aDir := a.Kind == types.FileNodeDirectory
		bDir := b.Kind == types.FileNodeDirectory
		if aDir != bDir {
			return aDir
		}
		return filetree.NaturalLess(a.Name, b.Name)
	})

	truncated := false
	shown := visible
	if opts.MaxFiles > 0 && len(visible) > opts.MaxFiles {
		shown = visible[:opts.MaxFiles]
		truncated = true
	}

	total := len(shown)
	if truncated {
		total++ // the "… (K more)" line counts as the last entry for branch drawing
	}

	for i, node := range shown {
		isLast := i == total-1
		branch := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			branch = "└── "
			childPrefix = prefix + "    "
		}

		sb.WriteString(prefix)
		sb.WriteString(branch)
		if node.Kind == types.FileNodeDirectory {
			fmt.Fprintf(sb, "%s/ (%d files)\n", node.Name, countFiles(node))
			writeTreeChildren(sb, node.Children, childPrefix, depth+1, opts)
		} else {
			fmt.Fprintf(sb, "%s (%s)\n", node.Name, humanByteSize(node.Size))
		}
	}

	if truncated {
		more := len(visible) - len(shown)
		sb.WriteString(prefix)
		fmt.Fprintf(sb, "└── … (%d more)\n", more)
	}
}

func countFiles(node *types.FileNode) int {
	if node == nil {
		return 0
	}
	if node.Kind == types.FileNodeFile {
		return 1
	}
	count := 0
	for _, c := range node.Children {
		count += countFiles(c)
	}
	return count
}

func humanByteSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	units := "KMGT"
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), units[exp])
}
