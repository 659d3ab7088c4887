package config

import (
	"path/filepath"
)

// Load resolves a Config for projectRoot: a .codeindex.kdl file takes
// precedence, then a .codeindex.toml file, then Default's smart defaults.
// The returned Config has always passed through Validator.ValidateAndSetDefaults.
func Load(projectRoot string) (*Config, error) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		absRoot = projectRoot
	}

	cfg, err := LoadKDL(absRoot)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg, err = LoadTOML(absRoot)
		if err != nil {
			return nil, err
		}
	}
	if cfg == nil {
		cfg = Default(absRoot)
	}

	cfg.EnrichExclusionsWithGitignore()

	v := NewValidator()
	if err := v.ValidateAndSetDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
