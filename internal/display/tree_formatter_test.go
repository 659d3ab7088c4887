package display

import (
	"testing"

	"github.com/benjamix95/codigo-sub004/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFileOutlineNil(t *testing.T) {
	assert.Equal(t, "No outline available", FileOutline(nil))
}

func TestFileOutlineTopLevelAndMembers(t *testing.T) {
	file := &types.IndexedFile{
		RelativePath: "internal/widget/widget.go",
		Language:     types.LangGo,
		LineCount:    42,
		Imports:      []string{"fmt", "strings"},
		Symbols: []types.IndexedSymbol{
			{
				Name:        "Widget",
				Kind:        types.KindStruct,
				Line:        10,
				EndLine:     20,
				AccessLevel: types.AccessPublic,
				Inherits:    []string{"Base"},
			},
			{
				Name:          "Render",
				Kind:          types.KindMethod,
				Line:          12,
				AccessLevel:   types.AccessPublic,
				ContainerName: "Widget",
				Documentation: "Render draws the widget to the screen.",
			},
		},
	}

	out := FileOutline(file)
	assert.Contains(t, out, "📄 internal/widget/widget.go (go, 42 lines)")
	assert.Contains(t, out, "Imports: fmt, strings")
	assert.Contains(t, out, "[public] struct Widget (L10-20)")
	assert.Contains(t, out, ": Base")
	assert.Contains(t, out, "[public] method Render (L12)")
	assert.Contains(t, out, "/// Render draws the widget to the screen.")
}

func TestFileOutlineStaticMember(t *testing.T) {
	file := &types.IndexedFile{
		RelativePath: "a.go",
		Language:     types.LangGo,
		Symbols: []types.IndexedSymbol{
			{Name: "Helper", Kind: types.KindFunction, Line: 1, AccessLevel: types.AccessPrivate, IsStatic: true},
		},
	}
	out := FileOutline(file)
	assert.Contains(t, out, "[private] static function Helper (L1)")
}

func fileNode(name string, kind types.FileNodeKind, size int64, children ...*types.FileNode) *types.FileNode {
	return &types.FileNode{Name: name, Kind: kind, Size: size, Children: children}
}

func TestProjectTreeDirectoriesFirst(t *testing.T) {
	root := fileNode("proj", types.FileNodeDirectory, 0,
		fileNode("zeta.go", types.FileNodeFile, 100),
		fileNode("alpha", types.FileNodeDirectory, 0,
			fileNode("nested.go", types.FileNodeFile, 50)),
	)

	out := ProjectTree([]*types.FileNode{root}, ProjectTreeOptions{MaxDepth: 6, MaxFiles: 50})

	assert.Contains(t, out, "📁 proj/ (2 files)")
	alphaIdx := indexOf(out, "alpha/")
	zetaIdx := indexOf(out, "zeta.go")
	assert.True(t, alphaIdx >= 0 && zetaIdx >= 0 && alphaIdx < zetaIdx, "directories must list before files")
	assert.Contains(t, out, "nested.go (50 B)")
}

func TestProjectTreeHidesDotfilesByDefault(t *testing.T) {
	root := fileNode("proj", types.FileNodeDirectory, 0,
		fileNode(".git", types.FileNodeDirectory, 0),
		fileNode("main.go", types.FileNodeFile, 10),
	)

	out := ProjectTree([]*types.FileNode{root}, ProjectTreeOptions{MaxDepth: 6, MaxFiles: 50})
	assert.NotContains(t, out, ".git")
	assert.Contains(t, out, "main.go")
}

func TestProjectTreeIncludeHidden(t *testing.T) {
	root := fileNode("proj", types.FileNodeDirectory, 0,
		fileNode(".env", types.FileNodeFile, 5),
	)
	out := ProjectTree([]*types.FileNode{root}, ProjectTreeOptions{MaxDepth: 6, MaxFiles: 50, IncludeHidden: true})
	assert.Contains(t, out, ".env")
}

func TestProjectTreeMaxFilesTruncates(t *testing.T) {
	children := make([]*types.FileNode, 0, 5)
	for i := 0; i < 5; i++ {
		children = append(children, fileNode(string(rune('a'+i))+".go", types.FileNodeFile, 1))
	}
	root := fileNode("proj", types.FileNodeDirectory, 0, children...)

	out := ProjectTree([]*types.FileNode{root}, ProjectTreeOptions{MaxDepth: 6, MaxFiles: 2})
	assert.Contains(t, out, "… (3 more)")
}

func TestProjectTreeMaxDepthStopsRecursion(t *testing.T) {
	root := fileNode("proj", types.FileNodeDirectory, 0,
		fileNode("level1", types.FileNodeDirectory, 0,
			fileNode("level2.go", types.FileNodeFile, 1)),
	)
	out := ProjectTree([]*types.FileNode{root}, ProjectTreeOptions{MaxDepth: 1, MaxFiles: 50})
	assert.Contains(t, out, "level1/")
	assert.NotContains(t, out, "level2.go")
}

func TestHumanByteSize(t *testing.T) {
	assert.Equal(t, "512 B", humanByteSize(512))
	assert.Equal(t, "1.0 KiB", humanByteSize(1024))
	assert.Equal(t, "1.5 KiB", humanByteSize(1536))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
