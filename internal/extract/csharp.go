package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	csUsingPattern     = `^\s*using\s+(?:static\s+)?([A-Za-z_][A-Za-z0-9_.]*)\s*;`
	csNamespacePattern = `^\s*namespace\s+([A-Za-z_][A-Za-z0-9_.]*)\s*\{?\s*$`
	csTypePattern      = `^\s*(?:(public|private|protected|internal)\s+)?(?:(static|sealed|abstract|partial)\s+)*(class|interface|struct|enum|record)\s+([A-Za-z_][A-Za-z0-9_]*)(?:\s*:\s*([A-Za-z_][A-Za-z0-9_.,\s<>]*))?\s*\{?\s*$`
	csMethodPattern    = `^\s*(?:(public|private|protected|internal)\s+)?(?:(static|virtual|override|async|sealed)\s+)*[A-Za-z_][A-Za-z0-9_<>\[\],.\s]*\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(([^;{]*)\)\s*\{?\s*$`
)

func csAccess(token string) types.AccessLevel {
	switch token {
	case "public":
		return types.AccessPublic
	case "private":
		return types.AccessPrivate
	case "protected":
		return types.AccessFilePrivate
	case "internal":
		return types.AccessInternal
	default:
		return types.AccessInternal
	}
}

// extractCSharp follows java.go's container-stack brace tracking; C#'s
// namespace/class/method grammar is close enough to Java's to share the
// approach, with [Test]/[Fact] attribute detection standing in for @Test.
func extractCSharp(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
	var imports []string
	var symbols []types.IndexedSymbol

	container := ""
	containerDepth := -1
	depth := 0

	for i, line := range lines {
		lt := trim(line)
		if lt == "" || strings.HasPrefix(lt, "//") || strings.HasPrefix(lt, "*") || strings.HasPrefix(lt, "[") {
			depth += braceDelta(line)
			continue
		}

		switch {
		case regexutil.MatchGroups(csTypePattern, line) != nil:
			m := regexutil.MatchGroups(csTypePattern, line)
			name := m[4]
			kind := types.KindClass
			switch m[3] {
			case "interface":
				kind = types.KindInterface
			case "struct":
				kind = types.KindStruct
			case "enum":
				kind = types.KindEnum
			}
			var inherits []string
			for _, base := range strings.Split(m[5], ",") {
				if t := trim(base); t != "" {
					inherits = append(inherits, t)
				}
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: csAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"), Inherits: inherits,
			})
			container = name
			containerDepth = depth
		case container != "" && regexutil.MatchGroups(csMethodPattern, line) != nil:
			m := regexutil.MatchGroups(csMethodPattern, line)
			name := m[3]
			kind := callableKind(container)
			if isPrecededByAnnotation(lines, i, "[Test") || isPrecededByAnnotation(lines, i, "[Fact") {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: csAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
				IsStatic:      strings.Contains(line, "static "),
			})
		case regexutil.MatchGroups(csNamespacePattern, line) != nil:
			m := regexutil.MatchGroups(csNamespacePattern, line)
			symbols = append(symbols, types.IndexedSymbol{
				Name: m[1], Kind: types.KindModule, Line: i + 1,
				AccessLevel: types.AccessPublic, QualifiedName: m[1],
				Signature: types.TruncateSignature(lt),
			})
		case regexutil.MatchGroups(csUsingPattern, line) != nil:
			imports = append(imports, regexutil.MatchGroups(csUsingPattern, line)[1])
		}

		depth += braceDelta(line)
		if container != "" && depth <= containerDepth {
			container = ""
			containerDepth = -1
		}
	}

	return imports, symbols
}
