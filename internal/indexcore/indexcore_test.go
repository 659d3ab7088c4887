package indexcore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjamix95/codigo-sub004/internal/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// A Swift class with a method and a stored property indexes as three
// symbols with qualified names and correct kinds.
func TestIndexWorkspaceSwiftClassMethodProperty(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "Foo.swift"), "import Bar\npublic class Foo {\n    public func greet() { print(\"hi\") }\n    let x = 1\n}\n")

	c := New()
	_, err := c.IndexWorkspace(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	file, ok := c.indexed["a/Foo.swift"]
	require.True(t, ok)
	assert.Equal(t, []string{"Bar"}, file.Imports)
	require.Len(t, file.Symbols, 3)

	qualified := map[string]types.IndexedSymbol{}
	for _, s := range file.Symbols {
		qualified[s.QualifiedName] = s
	}
	foo, ok := qualified["Foo"]
	require.True(t, ok)
	assert.Equal(t, types.KindClass, foo.Kind)
	assert.Equal(t, types.AccessPublic, foo.AccessLevel)

	greet, ok := qualified["Foo.greet"]
	require.True(t, ok)
	assert.Equal(t, types.KindMethod, greet.Kind)

	x, ok := qualified["Foo.x"]
	require.True(t, ok)
	assert.Equal(t, types.KindConstant, x.Kind)

	exact := c.FindExactSymbol("greet", nil)
	require.Len(t, exact, 1)
	assert.Equal(t, "Foo.greet", exact[0].QualifiedName)
}

// Go declarations map exported names to public and unexported to private.
func TestIndexWorkspaceGoAccessLevels(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "svc", "handler.go"),
		"package svc\n\ntype Server struct{\n\tname string\n}\n\nfunc (s *Server) Serve() {\n}\n\nfunc helper() {\n}\n")

	c := New()
	_, err := c.IndexWorkspace(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	byName := map[string]types.IndexedSymbol{}
	for _, s := range c.byFile["svc/handler.go"] {
		byName[s.QualifiedName] = s
	}

	server, ok := byName["Server"]
	require.True(t, ok)
	assert.Equal(t, types.AccessPublic, server.AccessLevel)

	serve, ok := byName["Server.Serve"]
	require.True(t, ok)
	assert.Equal(t, types.AccessPublic, serve.AccessLevel)
	assert.Equal(t, "Server", serve.ContainerName)

	helper, ok := byName["helper"]
	require.True(t, ok)
	assert.Equal(t, types.AccessPrivate, helper.AccessLevel)
}

// A Rust fn preceded by #[test] is recognized as a test symbol.
func TestIndexWorkspaceRustTestRecognition(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "lib.rs"), "#[test]\nfn test_add() { assert_eq!(1+1, 2); }\n")

	c := New()
	_, err := c.IndexWorkspace(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	syms := c.byFile["lib.rs"]
	require.Len(t, syms, 1)
	assert.Equal(t, types.KindTest, syms[0].Kind)
	assert.Equal(t, types.AccessPrivate, syms[0].AccessLevel)
}

// A Python method nested in a class picks up its container and docstring.
func TestIndexWorkspacePythonNestedMethodDocstring(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "c.py"), "class C:\n    def m(self):\n        \"\"\"doc line.\"\"\"\n        pass\n")

	c := New()
	_, err := c.IndexWorkspace(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	byQualified := map[string]types.IndexedSymbol{}
	for _, s := range c.byFile["c.py"] {
		byQualified[s.QualifiedName] = s
	}
	require.Contains(t, byQualified, "C")
	require.Contains(t, byQualified, "C.m")
	assert.Equal(t, "doc line.", byQualified["C.m"].Documentation)
}

// An incremental update with no filesystem changes reports zero updates.
func TestIncrementalUpdateNoOp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main\n\nfunc main() {}\n")

	c := New()
	_, err := c.IndexWorkspace(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	before := c.totalSymbols

	result, err := c.IncrementalUpdate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.UpdatedFiles)
	assert.Equal(t, before, c.totalSymbols)
}

// FindReferences reports the definition and a cross-file use.
func TestFindReferencesAcrossFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "Foo.swift"), "import Bar\npublic class Foo {\n    public func greet() { print(\"hi\") }\n    let x = 1\n}\n")
	writeFile(t, filepath.Join(root, "a", "Use.swift"), "let f = Foo(); f.greet()\n")

	c := New()
	_, err := c.IndexWorkspace(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	refs := c.FindReferences("greet", 100)
	require.GreaterOrEqual(t, len(refs), 2)

	var sawDef, sawUse bool
	for _, r := range refs {
		if r.IsDefinition && r.FilePath == "a/Foo.swift" && r.Line == 3 {
			sawDef = true
		}
		if !r.IsDefinition && r.FilePath == "a/Use.swift" {
			sawUse = true
		}
	}
	assert.True(t, sawDef)
	assert.True(t, sawUse)
}

// Add/remove keeps the symbol maps consistent, FindExactSymbol results are
// a subset of FindSymbols results, and FindSymbols never repeats a symbol.
func TestAddRemoveInvariantsAndSymbolSubset(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main\n\nfunc Greet() {}\n")

	c := New()
	_, err := c.IndexWorkspace(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	for p, syms := range c.byFile {
		for _, s := range syms {
			assert.Equal(t, p, s.FilePath)
		}
	}

	exact := c.FindExactSymbol("Greet", nil)
	found := c.FindSymbols("Greet", nil, "", 50)
	exactIDs := map[string]bool{}
	for _, s := range exact {
		exactIDs[s.ID()] = true
	}
	resultIDs := map[string]bool{}
	for _, s := range found.Results {
		assert.False(t, resultIDs[s.ID()], "findSymbols results must be pairwise distinct")
		resultIDs[s.ID()] = true
	}
	for id := range exactIDs {
		assert.True(t, resultIDs[id])
	}

	ok, err := c.IndexSingleFile(filepath.Join(root, "main.go"), "main.go")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, c.byFile["main.go"], 1)
}

func TestIndexWorkspaceSkipsOversizedFiles(t *testing.T) {
	root := t.TempDir()
	big := make([]byte, types.MaxFileSize+1)
	for i := range big {
		big[i] = 'a'
	}
	writeFile(t, filepath.Join(root, "huge.go"), string(big))
	writeFile(t, filepath.Join(root, "small.go"), "package main\n")

	c := New()
	_, err := c.IndexWorkspace(context.Background(), []string{root}, nil)
	require.NoError(t, err)

	_, hasHuge := c.indexed["huge.go"]
	_, hasSmall := c.indexed["small.go"]
	assert.False(t, hasHuge)
	assert.True(t, hasSmall)
}

func TestEnsureIndexedTriggersFullIndexOnce(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")

	c := New()
	require.Equal(t, types.StatusIdle, c.Status())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.EnsureIndexed(ctx, root, nil))
	assert.Equal(t, types.StatusReady, c.Status())

	require.NoError(t, c.EnsureIndexed(ctx, root, nil))
	assert.Equal(t, types.StatusReady, c.Status())
}
