// Package config loads workspace configuration for the indexing engine:
// the project root, size/count caps, and the exclusion sources layered on
// top of FileTreeBuilder's default-excluded-directory set. A config file
// is optional; every field has a smart default and the engine runs
// unconfigured against CLI-supplied workspace roots.
package config

import "github.com/benjamix95/codigo-sub004/internal/types"

// Config is the root configuration document, loaded from an optional
// .codeindex.kdl or .codeindex.toml file at the workspace root.
type Config struct {
	Version int
	Project Project
	Index   Index
	Include []string
	Exclude []string
}

// Project identifies the workspace being indexed.
type Project struct {
	Root string
	Name string
}

// Index controls the size/count caps and exclusion enrichments layered on
// top of the default excluded-directory set. MaxFileSize and MaxFileCount
// only ever narrow the engine's hard 1 MiB / 50,000-file caps (IndexCore
// clamps to whichever is smaller); they can never raise them.
type Index struct {
	MaxFileSize          int64 // bytes
	MaxFileCount         int
	RespectGitignore     bool // additive exclusion source
	DetectBuildArtifacts bool // additive exclusion source
}

// Default returns a Config populated with the engine's smart defaults for
// root, unconfigured by any file on disk.
func Default(root string) *Config {
	return &Config{
		Version: 1,
		Project: Project{Root: root},
		Index: Index{
			MaxFileSize:  types.MaxFileSize,
			MaxFileCount: types.MaxIndexedFiles,
		},
		Include: []string{},
		Exclude: []string{},
	}
}

// EnrichExclusionsWithBuildArtifacts appends glob patterns for detected
// build-output directories (package.json, Cargo.toml, pyproject.toml, ...)
// to Exclude, when Index.DetectBuildArtifacts is enabled. A no-op
// otherwise, and always additive.
func (cfg *Config) EnrichExclusionsWithBuildArtifacts() {
	if cfg == nil || !cfg.Index.DetectBuildArtifacts || cfg.Project.Root == "" {
		return
	}
	detector := NewBuildArtifactDetector(cfg.Project.Root)
	cfg.Exclude = append(cfg.Exclude, detector.DetectOutputDirectories()...)
}

// EnrichExclusionsWithGitignore appends .gitignore-derived patterns to
// Exclude, when Index.RespectGitignore is enabled.
func (cfg *Config) EnrichExclusionsWithGitignore() {
	if cfg == nil || !cfg.Index.RespectGitignore || cfg.Project.Root == "" {
		return
	}
	gp := NewGitignoreParser()
	if err := gp.LoadGitignore(cfg.Project.Root); err != nil {
		return
	}
	cfg.Exclude = append(cfg.Exclude, gp.ExclusionPatterns()...)
}
