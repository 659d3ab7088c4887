package regexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindBlockEndBalancesBraces(t *testing.T) {
	lines := []string{
		"func DoThing() {",
		"    if true {",
		"        x := 1",
		"    }",
		"    return",
		"}",
		"func Next() {}",
	}
	assert.Equal(t, 5, FindBlockEnd(lines, 0))
}

func TestFindBlockEndReturnsStartWhenNoBraceSeen(t *testing.T) {
	lines := []string{"var x = 1", "var y = 2"}
	assert.Equal(t, 0, FindBlockEnd(lines, 0))
}

func TestFindBlockEndSingleLineBlock(t *testing.T) {
	lines := []string{"func Empty() {}"}
	assert.Equal(t, 0, FindBlockEnd(lines, 0))
}

func TestFindPythonBlockEndUsesIndentation(t *testing.T) {
	lines := []string{
		"def outer():",
		"    x = 1",
		"    if x:",
		"        y = 2",
		"    return x",
		"",
		"def sibling():",
	}
	assert.Equal(t, 4, FindPythonBlockEnd(lines, 0, 0))
}

func TestFindPythonBlockEndSkipsBlankAndCommentLines(t *testing.T) {
	lines := []string{
		"def outer():",
		"    x = 1",
		"",
		"    # a comment at deeper indent doesn't matter",
		"    return x",
		"def sibling():",
	}
	assert.Equal(t, 4, FindPythonBlockEnd(lines, 0, 0))
}
