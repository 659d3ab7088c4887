package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	rustUsePattern    = `^\s*use\s+([A-Za-z_][A-Za-z0-9_:]*)`
	rustFnPattern     = `^\s*(pub(?:\([^)]*\))?\s+)?(?:async\s+)?fn\s+([A-Za-z_][A-Za-z0-9_]*)`
	rustStructPattern = `^\s*(pub(?:\([^)]*\))?\s+)?struct\s+([A-Za-z_][A-Za-z0-9_]*)`
	rustEnumPattern   = `^\s*(pub(?:\([^)]*\))?\s+)?enum\s+([A-Za-z_][A-Za-z0-9_]*)`
	rustTraitPattern  = `^\s*(pub(?:\([^)]*\))?\s+)?trait\s+([A-Za-z_][A-Za-z0-9_]*)`
	rustImplPattern   = `^\s*impl(?:<[^>]*>)?\s+(?:([A-Za-z_][A-Za-z0-9_:]*)\s+for\s+)?([A-Za-z_][A-Za-z0-9_:]*)`
	rustConstPattern  = `^\s*(pub(?:\([^)]*\))?\s+)?(const|static)\s+([A-Za-z_][A-Za-z0-9_]*)`
	rustTypePattern   = `^\s*(pub(?:\([^)]*\))?\s+)?type\s+([A-Za-z_][A-Za-z0-9_]*)`
	rustModPattern    = `^\s*(pub(?:\([^)]*\))?\s+)?mod\s+([A-Za-z_][A-Za-z0-9_]*)`
)

func rustAccess(pubToken string) types.AccessLevel {
	if trim(pubToken) != "" {
		return types.AccessPublic
	}
	return types.AccessPrivate
}

func extractRust(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
	var imports []string
	var symbols []types.IndexedSymbol

	container := ""
	containerDepth := -1
	depth := 0

	for i, line := range lines {
		lt := trim(line)
		if lt == "" || strings.HasPrefix(lt, "//") {
			depth += braceDelta(line)
			continue
		}

		switch {
		case regexutil.MatchGroups(rustStructPattern, line) != nil:
			m := regexutil.MatchGroups(rustStructPattern, line)
			name := m[2]
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindStruct, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: rustAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		case regexutil.MatchGroups(rustEnumPattern, line) != nil:
			m := regexutil.MatchGroups(rustEnumPattern, line)
			name := m[2]
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindEnum, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: rustAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		case regexutil.MatchGroups(rustTraitPattern, line) != nil:
			m := regexutil.MatchGroups(rustTraitPattern, line)
			name := m[2]
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindTrait, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: rustAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		case regexutil.MatchGroups(rustImplPattern, line) != nil:
			m := regexutil.MatchGroups(rustImplPattern, line)
			name := m[2]
			var inherits []string
			if m[1] != "" {
				inherits = []string{m[1]}
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindExtension, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPrivate, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"), Inherits: inherits,
			})
			container = name
			containerDepth = depth
		case regexutil.MatchGroups(rustFnPattern, line) != nil:
			m := regexutil.MatchGroups(rustFnPattern, line)
			name := m[2]
			kind := callableKind(container)
			if strings.HasPrefix(name, "test_") || isPrecededByRustTestAttr(lines, i) {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: rustAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		case regexutil.MatchGroups(rustConstPattern, line) != nil:
			m := regexutil.MatchGroups(rustConstPattern, line)
			name := m[3]
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindConstant, Line: i + 1, EndLine: i + 1,
				AccessLevel: rustAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		case regexutil.MatchGroups(rustTypePattern, line) != nil:
			m := regexutil.MatchGroups(rustTypePattern, line)
			name := m[2]
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindTypeAlias, Line: i + 1, EndLine: i + 1,
				AccessLevel: rustAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
			})
		case regexutil.MatchGroups(rustModPattern, line) != nil:
			m := regexutil.MatchGroups(rustModPattern, line)
			name := m[2]
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindModule, Line: i + 1, EndLine: i + 1,
				AccessLevel: rustAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
			})
		default:
			if m := regexutil.MatchGroups(rustUsePattern, line); m != nil {
				imports = append(imports, m[1])
			}
		}

		depth += braceDelta(line)
		if container != "" && depth <= containerDepth {
			container = ""
			containerDepth = -1
		}
	}

	return imports, symbols
}

func isPrecededByRustTestAttr(lines []string, declLine int) bool {
	for i := declLine - 1; i >= 0; i-- {
		l := trim(lines[i])
		if l == "" {
			continue
		}
		return l == "#[test]"
	}
	return false
}
