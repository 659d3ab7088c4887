package extract

import (
	"regexp"
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	rubyClassPattern      = `^\s*class\s+([A-Za-z_][A-Za-z0-9_:]*)(?:\s*<\s*([A-Za-z_][A-Za-z0-9_:]*))?`
	rubyModulePattern     = `^\s*module\s+([A-Za-z_][A-Za-z0-9_:]*)`
	rubyDefPattern        = `^\s*def\s+(self\.)?([A-Za-z_][A-Za-z0-9_?!=]*)`
	rubyRequirePattern    = `^\s*require(?:_relative)?\s+['"]([^'"]+)['"]`
	rubyVisibilityPattern = `^\s*(private|protected|public)\s*$`
)

var rubyBlockOpener = regexp.MustCompile(`^\s*(class\b|module\b|def\b|do\b|do\s*\|.*\|\s*$|if\b|unless\b|case\b|begin\b|while\b|until\b)`)

func extractRuby(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
	var imports []string
	var symbols []types.IndexedSymbol

	container := ""
	containerDepth := -1
	depth := 0
	visibility := types.AccessPublic

	for i, line := range lines {
		lt := trim(line)
		if lt == "" || strings.HasPrefix(lt, "#") {
			continue
		}

		if m := regexutil.MatchGroups(rubyVisibilityPattern, line); m != nil {
			switch m[1] {
			case "private":
				visibility = types.AccessPrivate
			case "protected":
				visibility = types.AccessFilePrivate
			default:
				visibility = types.AccessPublic
			}
			depth += rubyBlockDelta(line)
			continue
		}

		if m := regexutil.MatchGroups(rubyClassPattern, line); m != nil {
			name := m[1]
			var inherits []string
			if m[2] != "" {
				inherits = []string{m[2]}
			}
			endLine := findRubyEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindClass, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "#"), Inherits: inherits,
			})
			container = name
			containerDepth = depth
			visibility = types.AccessPublic
		} else if m := regexutil.MatchGroups(rubyModulePattern, line); m != nil {
			name := m[1]
			endLine := findRubyEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindModule, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "#"),
			})
			container = name
			containerDepth = depth
			visibility = types.AccessPublic
		} else if m := regexutil.MatchGroups(rubyDefPattern, line); m != nil {
			name := m[2]
			kind := callableKind(container)
			if strings.HasPrefix(name, "test_") {
				kind = types.KindTest
			}
			endLine := findRubyEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: visibility, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "#"),
				IsStatic:      m[1] != "",
			})
		} else if m := regexutil.MatchGroups(rubyRequirePattern, line); m != nil {
			imports = append(imports, m[1])
		}

		depth += rubyBlockDelta(line)
		if container != "" && depth <= containerDepth {
			container = ""
			containerDepth = -1
			visibility = types.AccessPublic
		}
	}

	return imports, symbols
}

func rubyBlockDelta(line string) int {
	trimmed := trim(line)
	if trimmed == "end" {
		return -1
	}
	if rubyBlockOpener.MatchString(line) {
		return 1
	}
	return 0
}

// findRubyEnd scans forward from start, balancing block-opening keywords
// against bare "end" lines, Ruby's equivalent of a brace balancer.
func findRubyEnd(lines []string, start int) int {
	balance := 0
	limit := start + 2000
	if limit > len(lines) {
		limit = len(lines)
	}
	for i := start; i < limit; i++ {
		balance += rubyBlockDelta(lines[i])
		if i > start && balance <= 0 {
			return i
		}
	}
	return start
}
