package config

import (
	"errors"
	"fmt"

	cixerrors "github.com/benjamix95/codigo-sub004/internal/errors"
)

// Validator validates a loaded Config and fills in any zero-valued field
// with its smart default.
type Validator struct{}

// NewValidator returns a ready-to-use Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults checks cfg for invalid field combinations, wrapping
// any failure in a cixerrors.ConfigError, then fills in defaults.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if err := v.validateProject(&cfg.Project); err != nil {
		return cixerrors.NewConfigError("project", err)
	}
	if err := v.validateIndex(&cfg.Index); err != nil {
		return cixerrors.NewConfigError("index", err)
	}

	v.setDefaults(cfg)
	return nil
}

func (v *Validator) validateProject(project *Project) error {
	if project.Root == "" {
		return errors.New("project root cannot be empty")
	}
	return nil
}

func (v *Validator) validateIndex(index *Index) error {
	if index.MaxFileSize < 0 {
		return fmt.Errorf("MaxFileSize cannot be negative, got %d", index.MaxFileSize)
	}
	if index.MaxFileCount < 0 {
		return fmt.Errorf("MaxFileCount cannot be negative, got %d", index.MaxFileCount)
	}
	return nil
}

func (v *Validator) setDefaults(cfg *Config) {
	if cfg.Index.MaxFileSize == 0 {
		cfg.Index.MaxFileSize = Default(cfg.Project.Root).Index.MaxFileSize
	}
	if cfg.Index.MaxFileCount == 0 {
		cfg.Index.MaxFileCount = Default(cfg.Project.Root).Index.MaxFileCount
	}
}

// ValidateConfig is a convenience wrapper around Validator for one-off use.
func ValidateConfig(cfg *Config) error {
	return NewValidator().ValidateAndSetDefaults(cfg)
}
