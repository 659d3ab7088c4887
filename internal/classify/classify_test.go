package classify

import (
	"testing"

	"github.com/benjamix95/codigo-sub004/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFromPathKnownExtensions(t *testing.T) {
	cases := map[string]types.Language{
		"main.go":            types.LangGo,
		"src/app.py":         types.LangPython,
		"src/widget.tsx":     types.LangTypeScriptReact,
		"src/widget.jsx":     types.LangJavaScriptReact,
		"lib.rs":             types.LangRust,
		"Account.java":       types.LangJava,
		"model.rb":           types.LangRuby,
		"index.php":          types.LangPHP,
		"Program.cs":         types.LangCSharp,
		"header.h":           types.LangCHeader,
		"impl.mm":            types.LangObjectiveCPP,
		"README.md":          types.LangMarkdown,
		"config.unknownext":  types.LangUnknown,
	}
	for path, want := range cases {
		assert.Equal(t, want, FromPath(path), "path %s", path)
	}
}

func TestFromPathIsCaseInsensitiveOnExtension(t *testing.T) {
	assert.Equal(t, types.LangGo, FromPath("main.GO"))
	assert.Equal(t, types.LangPython, FromPath("script.PY"))
}

func TestFromExtensionHandlesLeadingDot(t *testing.T) {
	assert.Equal(t, types.LangSwift, FromExtension(".swift"))
	assert.Equal(t, types.LangSwift, FromExtension("swift"))
}

func TestLineCommentAndBlockCommentDelimiters(t *testing.T) {
	comment, ok := LineComment(types.LangPython)
	assert.True(t, ok)
	assert.Equal(t, "#", comment)

	open, close, ok := BlockCommentDelimiters(types.LangGo)
	assert.True(t, ok)
	assert.Equal(t, "/*", open)
	assert.Equal(t, "*/", close)

	_, _, ok = BlockCommentDelimiters(types.LangPython)
	assert.False(t, ok, "python has no block comment delimiters")
}

func TestCanonicalExtensionsReturnsOrderedCopy(t *testing.T) {
	exts := CanonicalExtensions(types.LangJavaScript)
	assert.Equal(t, []string{"js", "mjs", "cjs"}, exts)

	exts[0] = "mutated"
	again := CanonicalExtensions(types.LangJavaScript)
	assert.Equal(t, "js", again[0], "returned slice must be a copy, not shared backing array")
}

func TestIsExtractorEligible(t *testing.T) {
	assert.True(t, IsExtractorEligible(types.LangGo))
	assert.True(t, IsExtractorEligible(types.LangRuby))
	assert.False(t, IsExtractorEligible(types.LangMarkdown))
	assert.False(t, IsExtractorEligible(types.LangUnknown))
}

func TestExtensionLowercasesAndStripsDot(t *testing.T) {
	assert.Equal(t, "go", Extension("main.GO"))
	assert.Equal(t, "tsx", Extension("src/Widget.TSX"))
	assert.Equal(t, "", Extension("Makefile"))
}
