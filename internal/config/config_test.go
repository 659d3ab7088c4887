package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaultsWhenNoConfigFile(t *testing.T) {
	root := t.TempDir()
	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.NotEmpty(t, cfg.Project.Root)
}

func TestLoadPrefersKDLOverTOML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".codeindex.kdl"),
		[]byte("project {\n  name \"from-kdl\"\n}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".codeindex.toml"),
		[]byte("[project]\nname = \"from-toml\"\n"), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "from-kdl", cfg.Project.Name)
}

func TestLoadTOMLWhenNoKDLPresent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".codeindex.toml"), []byte(`
version = 1

[project]
name = "toml-project"

[index]
max_file_count = 1234
`), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "toml-project", cfg.Project.Name)
	assert.Equal(t, 1234, cfg.Index.MaxFileCount)
}

func TestEnrichExclusionsWithBuildArtifactsIsAdditive(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"name":"x"}`), 0o644))

	cfg := Default(root)
	cfg.Index.DetectBuildArtifacts = true
	before := len(cfg.Exclude)
	cfg.EnrichExclusionsWithBuildArtifacts()
	assert.GreaterOrEqual(t, len(cfg.Exclude), before)
}

func TestEnrichExclusionsWithBuildArtifactsNoOpWhenDisabled(t *testing.T) {
	cfg := Default(t.TempDir())
	before := append([]string{}, cfg.Exclude...)
	cfg.EnrichExclusionsWithBuildArtifacts()
	assert.Equal(t, before, cfg.Exclude)
}
