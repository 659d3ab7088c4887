package regexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobMatchExtensionPattern(t *testing.T) {
	assert.True(t, GlobMatch("*.go", "main.go"))
	assert.True(t, GlobMatch("*.go", "internal/extract/extract.go"))
	assert.True(t, GlobMatch("**/*.ts", "src/app.ts"))
	assert.False(t, GlobMatch("*.go", "main.gox"))
}

func TestGlobMatchDoubleStarPrefix(t *testing.T) {
	assert.True(t, GlobMatch("**/test", "a/b/test"))
	assert.True(t, GlobMatch("**/test", "test"))
	assert.False(t, GlobMatch("**/test", "a/test/b"))
}

func TestGlobMatchDoubleStarSuffix(t *testing.T) {
	assert.True(t, GlobMatch("node_modules/**", "node_modules/react/index.js"))
	assert.True(t, GlobMatch("node_modules/**", "node_modules"))
	assert.False(t, GlobMatch("node_modules/**", "src/node_modules_shim.js"))
}

func TestGlobMatchSegmentWildcard(t *testing.T) {
	assert.True(t, GlobMatch("internal/*/extract.go", "internal/extract/extract.go"))
	assert.False(t, GlobMatch("internal/*/extract.go", "internal/a/b/extract.go"))
}

func TestGlobMatchSubstringFallback(t *testing.T) {
	assert.True(t, GlobMatch("widget", "src/components/widget.tsx"))
	assert.False(t, GlobMatch("missing", "src/components/widget.tsx"))
}

func TestMatchSegmentWithMultipleWildcards(t *testing.T) {
	assert.True(t, matchSegment("a*b*c", "axxbyyc"))
	assert.False(t, matchSegment("a*b*c", "axxbyy"))
	assert.True(t, matchSegment("*", "anything"))
	assert.True(t, matchSegment("exact", "exact"))
	assert.False(t, matchSegment("exact", "exacter"))
}
