package toolfacade

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjamix95/codigo-sub004/internal/indexcore"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newFacade(t *testing.T) (*Facade, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "svc", "server.go"),
		"package svc\n\ntype Server struct{\n\tname string\n}\n\nfunc (s *Server) Serve() {\n}\n")
	core := indexcore.New()
	return New(core, root), root
}

func TestInvokeUnknownToolFails(t *testing.T) {
	f, _ := newFacade(t)
	resp := f.Invoke(context.Background(), "call-1", "not_a_tool", nil)
	assert.Equal(t, StatusFailed, resp.Status)
	assert.False(t, resp.OK)
}

func TestInvokeFindSymbolTriggersLazyIndex(t *testing.T) {
	f, _ := newFacade(t)
	resp := f.Invoke(context.Background(), "call-2", "find_symbol", map[string]string{"query": "Server"})
	require.True(t, resp.OK)
	assert.Contains(t, resp.Output, "Server")
}

func TestInvokeFindSymbolMissingArgumentFails(t *testing.T) {
	f, _ := newFacade(t)
	resp := f.Invoke(context.Background(), "call-3", "find_symbol", map[string]string{})
	assert.Equal(t, StatusFailed, resp.Status)
	assert.False(t, resp.OK)
}

func TestInvokeListSymbolsByPath(t *testing.T) {
	f, _ := newFacade(t)
	_ = f.Invoke(context.Background(), "call-4", "index_status", nil)
	resp := f.Invoke(context.Background(), "call-5", "list_symbols", map[string]string{"path": "svc/server.go"})
	require.True(t, resp.OK)
	assert.Contains(t, resp.Output, "Serve")
}

func TestInvokeProjectStructureClampsDepth(t *testing.T) {
	f, _ := newFacade(t)
	resp := f.Invoke(context.Background(), "call-6", "project_structure", map[string]string{"maxDepth": "99"})
	require.True(t, resp.OK)
	assert.NotEmpty(t, resp.Output)
}

func TestInvokeIndexStatusThenReindex(t *testing.T) {
	f, _ := newFacade(t)
	status := f.Invoke(context.Background(), "call-7", "index_status", nil)
	require.True(t, status.OK)

	reindex := f.Invoke(context.Background(), "call-8", "reindex", nil)
	require.True(t, reindex.OK)
}

func TestInvokeCodebaseStatsAfterIndexing(t *testing.T) {
	f, _ := newFacade(t)
	_ = f.Invoke(context.Background(), "call-9", "index_status", nil)
	resp := f.Invoke(context.Background(), "call-10", "codebase_stats", nil)
	require.True(t, resp.OK)
	assert.Contains(t, resp.Output, "Files:")
}

func TestResolveKindsExpandsAlias(t *testing.T) {
	kinds := resolveKinds("function")
	assert.Len(t, kinds, 2)
}

func TestResolveKindsUnknownPassesThrough(t *testing.T) {
	kinds := resolveKinds("class")
	require.Len(t, kinds, 1)
	assert.Equal(t, "class", string(kinds[0]))
}
