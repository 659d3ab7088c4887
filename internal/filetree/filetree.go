// Package filetree implements FileTreeBuilder: recursive workspace
// traversal honoring default and user-supplied directory exclusions,
// producing a tree of FileNodes and a flat path->node map.
package filetree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/benjamix95/codigo-sub004/internal/classify"
	cixerrors "github.com/benjamix95/codigo-sub004/internal/errors"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

// DefaultExcludedDirs is the exact-basename set excluded from traversal
// unless explicitly overridden.
var DefaultExcludedDirs = map[string]bool{
	"node_modules": true, ".git": true, ".svn": true, ".hg": true,
	".build": true, "build": true, "Build": true, "DerivedData": true,
	"dist": true, "out": true, ".output": true, ".next": true, ".nuxt": true,
	".cache": true, ".swiftpm": true, ".gradle": true, "__pycache__": true,
	".pytest_cache": true, ".mypy_cache": true, "venv": true, ".venv": true,
	"env": true, ".env": true, "Pods": true, "Carthage": true, ".idea": true,
	".vscode": true, ".vs": true, "vendor": true, "target": true,
	"coverage": true, ".nyc_output": true, ".terraform": true,
}

// BuildOptions configures a single BuildFileTree call.
type BuildOptions struct {
	// ExcludedPaths is the user-supplied exclusion list, matched against a
	// directory's basename exactly, or as a doublestar glob pattern when it
	// contains glob metacharacters. This only ever adds exclusions on top
	// of DefaultExcludedDirs, never narrows it.
	ExcludedPaths []string
	// IncludeHidden, when false (the default), skips dotfile/dotdir entries
	// during directory listing.
	IncludeHidden bool
	// OnDirectoryUnreadable, when non-nil, is invoked for every directory
	// that cannot be listed.
	OnDirectoryUnreadable func(*cixerrors.DirectoryUnreadableError)
}

// BuildFileTree recursively walks root, producing its FileNode and
// honoring the default and user-supplied exclusion sets. relative and
// depth track the node's position for recursive calls; external callers
// pass "" and 0.
func BuildFileTree(root, relative string, depth int, opts BuildOptions) *types.FileNode {
	info, err := os.Lstat(root)
	if err != nil {
		return &types.FileNode{
			Kind:         types.FileNodeFile,
			Name:         filepath.Base(root),
			RelativePath: relative,
			AbsolutePath: root,
			Depth:        depth,
		}
	}

	name := filepath.Base(root)
	if info.Mode()&os.ModeSymlink != 0 {
		return &types.FileNode{
			Kind:         types.FileNodeSymlink,
			Name:         name,
			RelativePath: relative,
			AbsolutePath: root,
			Depth:        depth,
			ModifiedAt:   info.ModTime(),
		}
	}

	if info.IsDir() {
		node := &types.FileNode{
			Kind:         types.FileNodeDirectory,
			Name:         name,
			RelativePath: relative,
			AbsolutePath: root,
			Depth:        depth,
			ModifiedAt:   info.ModTime(),
		}
		if isExcluded(name, relative, opts.ExcludedPaths) {
			return node // pruned: directory node with empty children
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			if opts.OnDirectoryUnreadable != nil {
				opts.OnDirectoryUnreadable(cixerrors.NewDirectoryUnreadableError(root, err))
			}
			return node
		}

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !opts.IncludeHidden && strings.HasPrefix(e.Name(), ".") {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Slice(names, func(i, j int) bool { return NaturalLess(names[i], names[j]) })

		node.Children = make([]*types.FileNode, 0, len(names))
		for _, childName := range names {
			childRel := childName
			if relative != "" {
				childRel = relative + "/" + childName
			}
			child := BuildFileTree(filepath.Join(root, childName), childRel, depth+1, opts)
			node.Children = append(node.Children, child)
		}
		return node
	}

	ext := classify.Extension(root)
	return &types.FileNode{
		Kind:         types.FileNodeFile,
		Name:         name,
		Extension:    ext,
		RelativePath: relative,
		AbsolutePath: root,
		Depth:        depth,
		Size:         info.Size(),
		ModifiedAt:   info.ModTime(),
	}
}

// isExcluded reports whether a directory is pruned: its basename is in the
// default-excluded set, or it matches a user-supplied exclusion (exact
// basename, or a doublestar glob against the relative path when the
// pattern contains glob metacharacters).
func isExcluded(basename, relativePath string, userExcluded []string) bool {
	if DefaultExcludedDirs[basename] {
		return true
	}
	for _, pat := range userExcluded {
		if pat == basename {
			return true
		}
		if strings.ContainsAny(pat, "*?[") {
			if ok, _ := doublestar.Match(pat, relativePath); ok {
				return true
			}
			if ok, _ := doublestar.Match(pat, basename); ok {
				return true
			}
		}
	}
	return false
}

// Flatten inserts every node (files and directories) of tree into out,
// keyed by relative path.
func Flatten(tree *types.FileNode, out map[string]*types.FileNode) {
	if tree == nil {
		return
	}
	if tree.RelativePath != "" || tree.Depth == 0 {
		out[tree.RelativePath] = tree
	}
	for _, child := range tree.Children {
		Flatten(child, out)
	}
}

// CollectSourceFiles walks the flattened node map and returns every node
// that qualifies as a source file (types.FileNode.IsSourceFile), in a
// deterministic order (sorted by relative path) so repeated indexing runs
// process files in a stable order.
func CollectSourceFiles(nodes map[string]*types.FileNode) []*types.FileNode {
	out := make([]*types.FileNode, 0, len(nodes))
	for _, n := range nodes {
		if n.IsSourceFile() {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RelativePath < out[j].RelativePath })
	return out
}
