package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// gitignoreRule is one parsed, non-comment, non-blank line of a .gitignore
// file.
type gitignoreRule struct {
	pattern  string
	negate   bool // leading "!"
	dirOnly  bool // trailing "/"
	anchored bool // leading "/": only matches from the gitignore's own root
}

// GitignoreParser accumulates gitignore rules for a workspace root and
// turns them into filetree exclusion globs.
type GitignoreParser struct {
	rules []gitignoreRule
}

// NewGitignoreParser returns an empty parser.
func NewGitignoreParser() *GitignoreParser {
	return &GitignoreParser{}
}

// LoadGitignore reads rootPath/.gitignore, if present. A missing file is
// not an error.
func (p *GitignoreParser) LoadGitignore(rootPath string) error {
	f, err := os.Open(filepath.Join(rootPath, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		p.AddPattern(scanner.Text())
	}
	return scanner.Err()
}

// AddPattern parses a single gitignore line and appends its rule, skipping
// blank lines and comments.
func (p *GitignoreParser) AddPattern(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	rule := gitignoreRule{}
	if strings.HasPrefix(line, "!") {
		rule.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		rule.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		rule.anchored = true
		line = line[1:]
	}
	rule.pattern = line
	p.rules = append(p.rules, rule)
}

// ShouldIgnore reports whether path (slash-separated, relative to the
// gitignore's root) is excluded. Rules apply in file order, so a later
// negation rule can re-include a path an earlier rule excluded.
func (p *GitignoreParser) ShouldIgnore(path string, isDir bool) bool {
	path = filepath.ToSlash(path)
	ignored := false
	for _, rule := range p.rules {
		if ruleMatches(rule, path, isDir) {
			ignored = !rule.negate
		}
	}
	return ignored
}

func ruleMatches(rule gitignoreRule, path string, isDir bool) bool {
	if rule.dirOnly && !isDir {
		// A directory-only rule still excludes files nested under that
		// directory, even though it never matches the file path itself:
		// only the file's parent directories are tested.
		idx := strings.LastIndex(path, "/")
		if idx < 0 {
			return false
		}
		return globMatchesComponent(rule, path[:idx], true)
	}
	return globMatchesComponent(rule, path, isDir)
}

// globMatchesComponent tries rule.pattern against path directly (anchored
// rules) or against every path-component suffix (relative rules, matching
// git's own "matches anywhere in the tree" semantics).
func globMatchesComponent(rule gitignoreRule, path string, isDir bool) bool {
	if rule.anchored {
		return globMatch(rule.pattern, path) || strings.HasPrefix(path, rule.pattern+"/")
	}

	parts := strings.Split(strings.TrimSuffix(path, "/"), "/")
	for i := range parts {
		suffix := strings.Join(parts[i:], "/")
		if globMatch(rule.pattern, suffix) || strings.HasPrefix(suffix, rule.pattern+"/") {
			return true
		}
	}
	return false
}

func globMatch(pattern, path string) bool {
	if ok, _ := filepath.Match(pattern, path); ok {
		return true
	}
	if strings.ContainsAny(pattern, "*?[") {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return pattern == path
}

// ExclusionPatterns converts every non-negated rule into a filetree
// exclusion glob. Negated rules have no filetree equivalent (they would
// need to re-include something an earlier pattern already excluded) and
// are dropped, matching EnrichExclusionsWithGitignore's additive-only
// contract.
func (p *GitignoreParser) ExclusionPatterns() []string {
	var patterns []string
	for _, rule := range p.rules {
		if rule.negate {
			continue
		}
		patterns = append(patterns, ruleToGlob(rule))
	}
	return patterns
}

func ruleToGlob(rule gitignoreRule) string {
	switch {
	case rule.dirOnly && rule.anchored:
		return rule.pattern + "/**"
	case rule.dirOnly:
		return "**/" + rule.pattern + "/**"
	case rule.anchored:
		return rule.pattern
	default:
		return "**/" + rule.pattern
	}
}
