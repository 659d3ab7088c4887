package regexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatchSubsequence(t *testing.T) {
	assert.True(t, FuzzyMatch("", "anything"))
	assert.True(t, FuzzyMatch("fSM", "findSymbolMatch"))
	assert.True(t, FuzzyMatch("idx", "indexDataXform"))
	assert.False(t, FuzzyMatch("xyz", "findSymbolMatch"))
}

func TestFuzzyMatchIsCaseSensitive(t *testing.T) {
	assert.False(t, FuzzyMatch("ABC", "abcdef"))
	assert.True(t, FuzzyMatch("abc", "abcdef"))
}

func TestFuzzyMatchRequiresOrder(t *testing.T) {
	assert.True(t, FuzzyMatch("ace", "abcdef"))
	assert.False(t, FuzzyMatch("eca", "abcdef"))
}
