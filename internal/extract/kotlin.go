package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	kotlinImportPattern = `^\s*import\s+([A-Za-z_][A-Za-z0-9_.]*)`
	kotlinTypePattern   = `^\s*(?:(public|private|protected|internal)\s+)?(?:open\s+|abstract\s+|final\s+|data\s+|sealed\s+)*(class|interface|object)\s+([A-Za-z_][A-Za-z0-9_]*)(?:\s*:\s*([A-Za-z_][A-Za-z0-9_.,\s()]*))?`
	kotlinFunPattern    = `^\s*(?:(public|private|protected|internal)\s+)?(?:open\s+|override\s+|suspend\s+|inline\s+)*fun\s+([A-Za-z_][A-Za-z0-9_]*)`
	kotlinValVarPattern = `^\s*(?:(public|private|protected|internal)\s+)?(val|var)\s+([A-Za-z_][A-Za-z0-9_]*)`
)

func kotlinAccess(token string) types.AccessLevel {
	switch token {
	case "private":
		return types.AccessPrivate
	case "protected":
		return types.AccessFilePrivate
	case "internal":
		return types.AccessInternal
	default:
		return types.AccessPublic // Kotlin's default visibility
	}
}

func extractKotlin(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
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

		if m := regexutil.MatchGroups(kotlinTypePattern, line); m != nil {
			name := m[3]
			kind := types.KindClass
			if m[2] == "interface" {
				kind = types.KindInterface
			}
			var inherits []string
			for _, base := range strings.Split(m[4], ",") {
				if t := trim(base); t != "" {
					inherits = append(inherits, t)
				}
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: kotlinAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"), Inherits: inherits,
			})
			container = name
			containerDepth = depth
		} else if m := regexutil.MatchGroups(kotlinFunPattern, line); m != nil {
			name := m[2]
			kind := callableKind(container)
			if strings.Contains(line, "@Test") || isPrecededByAnnotation(lines, i, "@Test") {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: kotlinAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		} else if m := regexutil.MatchGroups(kotlinValVarPattern, line); m != nil {
			name := m[3]
			// Known approximation: every `val` is treated as a constant
			// regardless of enclosing class context (see design notes).
			kind := types.KindConstant
			if m[2] == "var" {
				kind = types.KindVariable
			}
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: i + 1,
				AccessLevel: kotlinAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
			})
		} else if m := regexutil.MatchGroups(kotlinImportPattern, line); m != nil {
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
