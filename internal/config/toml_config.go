package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// tomlDocument mirrors Config's shape for unmarshaling a .codeindex.toml
// file, independent of the KDL node-walking representation kdl_config.go
// uses for the primary config format.
type tomlDocument struct {
	Version int `toml:"version"`
	Project struct {
		Root string `toml:"root"`
		Name string `toml:"name"`
	} `toml:"project"`
	Index struct {
		MaxFileSize          string `toml:"max_file_size"`
		MaxFileCount         int    `toml:"max_file_count"`
		RespectGitignore     bool   `toml:"respect_gitignore"`
		DetectBuildArtifacts bool   `toml:"detect_build_artifacts"`
	} `toml:"index"`
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// LoadTOML attempts to load configuration from a .codeindex.toml file at
// projectRoot, returning (nil, nil) when no such file exists.
func LoadTOML(projectRoot string) (*Config, error) {
	tomlPath := filepath.Join(projectRoot, ".codeindex.toml")

	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(tomlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .codeindex.toml: %v", err)
	}

	var doc tomlDocument
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	cfg := Default(projectRoot)
	if doc.Version != 0 {
		cfg.Version = doc.Version
	}
	if doc.Project.Root != "" {
		cfg.Project.Root = doc.Project.Root
	}
	cfg.Project.Name = doc.Project.Name

	if doc.Index.MaxFileSize != "" {
		if sz, err := parseSize(doc.Index.MaxFileSize); err == nil {
			cfg.Index.MaxFileSize = sz
		}
	}
	if doc.Index.MaxFileCount != 0 {
		cfg.Index.MaxFileCount = doc.Index.MaxFileCount
	}
	cfg.Index.RespectGitignore = doc.Index.RespectGitignore
	cfg.Index.DetectBuildArtifacts = doc.Index.DetectBuildArtifacts

	if len(doc.Include) > 0 {
		cfg.Include = doc.Include
	}
	if len(doc.Exclude) > 0 {
		cfg.Exclude = doc.Exclude
	}

	cfg.EnrichExclusionsWithBuildArtifacts()
	return cfg, nil
}
