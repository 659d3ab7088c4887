package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// BuildArtifactDetector inspects a project root's build configuration files
// for custom output directories, so they can be added to the exclusion set
// on top of the default excluded-directory list.
type BuildArtifactDetector struct {
	root string
}

// NewBuildArtifactDetector returns a detector scoped to root.
func NewBuildArtifactDetector(root string) *BuildArtifactDetector {
	return &BuildArtifactDetector{root: root}
}

// detector is one build-file inspector; it returns exclusion glob patterns
// derived from that file's declared output directory, or nil if the file
// is absent or names no custom output.
type detector func(root string) []string

var buildArtifactDetectors = []detector{
	detectNodeOutputs,
	detectRustOutputs,
	detectPythonOutputs,
}

// DetectOutputDirectories runs every registered detector against d.root and
// returns the union of their exclusion patterns.
func (d *BuildArtifactDetector) DetectOutputDirectories() []string {
	var patterns []string
	for _, detect := range buildArtifactDetectors {
		patterns = append(patterns, detect(d.root)...)
	}
	return DeduplicatePatterns(patterns)
}

// detectNodeOutputs inspects package.json, tsconfig.json, and vite's config
// files for a declared output directory.
func detectNodeOutputs(root string) []string {
	var patterns []string

	if pkg, ok := readJSONObject(filepath.Join(root, "package.json")); ok {
		if build, ok := pkg["build"].(map[string]interface{}); ok {
			if outDir, ok := build["outDir"].(string); ok && outDir != "" {
				patterns = append(patterns, excludeDirPattern(outDir))
			}
		}
	}

	if tsconfig, ok := readJSONObject(filepath.Join(root, "tsconfig.json")); ok {
		if opts, ok := tsconfig["compilerOptions"].(map[string]interface{}); ok {
			if outDir, ok := opts["outDir"].(string); ok && outDir != "" {
				patterns = append(patterns, excludeDirPattern(outDir))
			}
		}
	}

	for _, name := range []string{"vite.config.js", "vite.config.ts"} {
		if outDir, ok := scanForOutDirLiteral(filepath.Join(root, name)); ok {
			patterns = append(patterns, excludeDirPattern(outDir))
		}
	}

	return patterns
}

// detectRustOutputs inspects Cargo.toml's [profile.release] section for a
// custom target-dir.
func detectRustOutputs(root string) []string {
	var cargo struct {
		Profile struct {
			Release struct {
				TargetDir string `toml:"target-dir"`
			} `toml:"release"`
		} `toml:"profile"`
	}
	if !readTOMLInto(filepath.Join(root, "Cargo.toml"), &cargo) {
		return nil
	}
	if cargo.Profile.Release.TargetDir == "" {
		return nil
	}
	return []string{excludeDirPattern(cargo.Profile.Release.TargetDir)}
}

// detectPythonOutputs inspects pyproject.toml's Poetry build section for a
// custom target-dir.
func detectPythonOutputs(root string) []string {
	var pyproject struct {
		Tool struct {
			Poetry struct {
				Build struct {
					TargetDir string `toml:"target-dir"`
				} `toml:"build"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if !readTOMLInto(filepath.Join(root, "pyproject.toml"), &pyproject) {
		return nil
	}
	if pyproject.Tool.Poetry.Build.TargetDir == "" {
		return nil
	}
	return []string{excludeDirPattern(pyproject.Tool.Poetry.Build.TargetDir)}
}

func readJSONObject(path string) (map[string]interface{}, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func readTOMLInto(path string, v interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return toml.Unmarshal(data, v) == nil
}

// scanForOutDirLiteral looks for a quoted outDir value inside a JS/TS build
// config file without parsing the file as JavaScript (vite.config.* is not
// JSON and this codebase has no JS parser).
func scanForOutDirLiteral(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	content := string(data)
	idx := strings.Index(content, "outDir")
	if idx == -1 {
		return "", false
	}
	rest := content[idx+len("outDir"):]
	colon := strings.Index(rest, ":")
	if colon == -1 {
		return "", false
	}
	rest = rest[colon+1:]

	for _, quote := range []string{"'", "\""} {
		parts := strings.SplitN(rest, quote, 3)
		if len(parts) >= 3 {
			if dir := strings.TrimSpace(parts[1]); dir != "" {
				return dir, true
			}
		}
	}
	return "", false
}

func excludeDirPattern(dir string) string {
	return "**/" + dir + "/**"
}

// DeduplicatePatterns removes duplicate exclusion patterns, preserving
// first-seen order.
func DeduplicatePatterns(patterns []string) []string {
	seen := make(map[string]bool, len(patterns))
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if !seen[pattern] {
			seen[pattern] = true
			result = append(result, pattern)
		}
	}
	return result
}
