package regexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchGroupsReturnsCapturesOrNil(t *testing.T) {
	groups := MatchGroups(`^func\s+([A-Za-z_][A-Za-z0-9_]*)\(`, "func DoThing(x int) {")
	require.NotNil(t, groups)
	assert.Equal(t, "DoThing", groups[1])

	assert.Nil(t, MatchGroups(`^func\s+`, "var x = 1"))
}

func TestMatchAllCollectsEveryMatch(t *testing.T) {
	text := "import \"fmt\"\nimport \"os\"\n"
	names := MatchAll(`import\s+"([^"]+)"`, text, 1)
	assert.Equal(t, []string{"fmt", "os"}, names)
}

func TestFirstMatchReportsPresence(t *testing.T) {
	s, ok := FirstMatch(`[0-9]+`, "abc 123 def")
	assert.True(t, ok)
	assert.Equal(t, "123", s)

	_, ok = FirstMatch(`[0-9]+`, "no digits here")
	assert.False(t, ok)
}

func TestCompileRejectsInvalidPatternWithoutPanic(t *testing.T) {
	_, err := Compile(`(unterminated`)
	assert.Error(t, err)
}
