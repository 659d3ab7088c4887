package pathutil

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/benjamix95/codigo-sub004/internal/types"
)

func TestToRelative(t *testing.T) {
	tests := []struct {
		name     string
		absPath  string
		rootDir  string
		expected string
	}{
		{
			name:     "simple relative path",
			absPath:  "/home/user/project/src/main.go",
			rootDir:  "/home/user/project",
			expected: "src/main.go",
		},
		{
			name:     "nested relative path",
			absPath:  "/home/user/project/internal/core/search.go",
			rootDir:  "/home/user/project",
			expected: "internal/core/search.go",
		},
		{
			name:     "root level file",
			absPath:  "/home/user/project/README.md",
			rootDir:  "/home/user/project",
			expected: "README.md",
		},
		{
			name:     "same directory",
			absPath:  "/home/user/project",
			rootDir:  "/home/user/project",
			expected: ".",
		},
		{
			name:     "already relative path",
			absPath:  "src/main.go",
			rootDir:  "/home/user/project",
			expected: "src/main.go",
		},
		{
			name:     "path outside root - fallback to absolute",
			absPath:  "/other/location/file.go",
			rootDir:  "/home/user/project",
			expected: "/other/location/file.go",
		},
		{
			name:     "empty root directory",
			absPath:  "/home/user/project/file.go",
			rootDir:  "",
			expected: "/home/user/project/file.go",
		},
		{
			name:     "empty absolute path",
			absPath:  "",
			rootDir:  "/home/user/project",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToRelative(tt.absPath, tt.rootDir)
			if runtime.GOOS == "windows" {
				result = filepath.ToSlash(result)
				expected := filepath.ToSlash(tt.expected)
				if result != expected {
					t.Errorf("ToRelative() = %v, want %v", result, expected)
				}
			} else if result != tt.expected {
				t.Errorf("ToRelative() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestToRelativeSymbolReferences(t *testing.T) {
	rootDir := "/home/user/project"

	input := []types.SymbolReference{
		{SymbolName: "Foo", FilePath: "/home/user/project/src/main.go", Line: 10, ContextLine: "foo()", IsDefinition: true},
		{SymbolName: "Foo", FilePath: "/home/user/project/internal/core/search.go", Line: 42, ContextLine: "foo(1)"},
	}

	results := ToRelativeSymbolReferences(input, rootDir)

	expected := []string{"src/main.go", "internal/core/search.go"}
	if len(results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(results))
	}
	for i, r := range results {
		if r.FilePath != expected[i] {
			t.Errorf("result %d: FilePath = %v, want %v", i, r.FilePath, expected[i])
		}
		if r.SymbolName != input[i].SymbolName {
			t.Errorf("result %d: SymbolName changed", i)
		}
		if r.Line != input[i].Line {
			t.Errorf("result %d: Line changed", i)
		}
		if r.IsDefinition != input[i].IsDefinition {
			t.Errorf("result %d: IsDefinition changed", i)
		}
	}
}

func TestToRelativeSymbolReferencesEmptySlice(t *testing.T) {
	empty := []types.SymbolReference{}
	result := ToRelativeSymbolReferences(empty, "/home/user/project")
	if len(result) != 0 {
		t.Errorf("expected empty slice, got %d elements", len(result))
	}
}
