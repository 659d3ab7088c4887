package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	phpUsePattern       = `^\s*use\s+([A-Za-z_\\][A-Za-z0-9_\\]*)`
	phpClassPattern     = `^\s*(?:abstract\s+|final\s+)?class\s+([A-Za-z_][A-Za-z0-9_]*)(?:\s+extends\s+([A-Za-z_][A-Za-z0-9_]*))?(?:\s+implements\s+([A-Za-z_][A-Za-z0-9_,\s]*))?`
	phpInterfacePattern = `^\s*interface\s+([A-Za-z_][A-Za-z0-9_]*)`
	phpTraitPattern     = `^\s*trait\s+([A-Za-z_][A-Za-z0-9_]*)`
	phpFunctionPattern  = `^\s*(?:(public|private|protected)\s+)?(?:static\s+)?function\s+&?([A-Za-z_][A-Za-z0-9_]*)`
)

func phpAccess(token string) types.AccessLevel {
	switch token {
	case "private":
		return types.AccessPrivate
	case "protected":
		return types.AccessFilePrivate
	default:
		return types.AccessPublic
	}
}

func extractPHP(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
	var imports []string
	var symbols []types.IndexedSymbol

	container := ""
	containerDepth := -1
	depth := 0

	for i, line := range lines {
		lt := trim(line)
		if lt == "" || strings.HasPrefix(lt, "//") || strings.HasPrefix(lt, "#") || strings.HasPrefix(lt, "*") {
			depth += braceDelta(line)
			continue
		}

		if m := regexutil.MatchGroups(phpClassPattern, line); m != nil {
			name := m[1]
			var inherits []string
			if m[2] != "" {
				inherits = append(inherits, m[2])
			}
			for _, impl := range strings.Split(m[3], ",") {
				if t := trim(impl); t != "" {
					inherits = append(inherits, t)
				}
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindClass, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"), Inherits: inherits,
			})
			container = name
			containerDepth = depth
		} else if m := regexutil.MatchGroups(phpInterfacePattern, line); m != nil {
			name := m[1]
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindInterface, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
			})
			container = name
			containerDepth = depth
		} else if m := regexutil.MatchGroups(phpTraitPattern, line); m != nil {
			name := m[1]
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindTrait, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
			})
			container = name
			containerDepth = depth
		} else if m := regexutil.MatchGroups(phpFunctionPattern, line); m != nil {
			name := m[2]
			kind := callableKind(container)
			if strings.HasPrefix(name, "test") {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: phpAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
				IsStatic:      strings.Contains(line, "static "),
			})
		} else if m := regexutil.MatchGroups(phpUsePattern, line); m != nil {
			imports = append(imports, m[1])
		}

		depth += braceDelta(line)
		if container != "" && depth <= containerDepth {
			container = ""
			containerDepth = -1
		}
	}

	return imports, symbols
}
