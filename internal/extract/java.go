package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	javaImportPattern = `^\s*import\s+(?:static\s+)?([A-Za-z_][A-Za-z0-9_.]*)\s*;`
	javaTypePattern   = `^\s*(?:(public|private|protected)\s+)?(?:static\s+|final\s+|abstract\s+)*(class|interface|enum)\s+([A-Za-z_][A-Za-z0-9_]*)(?:\s+extends\s+([A-Za-z_][A-Za-z0-9_.]*))?(?:\s+implements\s+([A-Za-z_][A-Za-z0-9_.,\s]*))?`
	javaMethodPattern = `^\s*(?:(public|private|protected)\s+)?(?:static\s+|final\s+|abstract\s+|synchronized\s+)*[A-Za-z_][A-Za-z0-9_<>\[\],.\s]*\s+([A-Za-z_][A-Za-z0-9_]*)\s*\([^;{]*\)\s*(?:throws\s+[A-Za-z0-9_.,\s]*)?\{?\s*$`
)

func javaAccess(token string) types.AccessLevel {
	switch token {
	case "public":
		return types.AccessPublic
	case "private":
		return types.AccessPrivate
	case "protected":
		return types.AccessFilePrivate
	default:
		return types.AccessInternal
	}
}

func extractJava(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
	var imports []string
	var symbols []types.IndexedSymbol

	container := ""
	containerDepth := -1
	depth := 0

	for i, line := range lines {
		lt := trim(line)
		if lt == "" || strings.HasPrefix(lt, "//") || strings.HasPrefix(lt, "*") || strings.HasPrefix(lt, "@") {
			depth += braceDelta(line)
			continue
		}

		if m := regexutil.MatchGroups(javaTypePattern, line); m != nil {
			name := m[3]
			kind := types.KindClass
			switch m[2] {
			case "interface":
				kind = types.KindInterface
			case "enum":
				kind = types.KindEnum
			}
			var inherits []string
			if m[4] != "" {
				inherits = append(inherits, m[4])
			}
			for _, impl := range strings.Split(m[5], ",") {
				if t := trim(impl); t != "" {
					inherits = append(inherits, t)
				}
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: javaAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"), Inherits: inherits,
			})
			container = name
			containerDepth = depth
		} else if container != "" && regexutil.MatchGroups(javaMethodPattern, line) != nil {
			m := regexutil.MatchGroups(javaMethodPattern, line)
			name := m[2]
			kind := callableKind(container)
			if isPrecededByAnnotation(lines, i, "@Test") {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: javaAccess(m[1]), QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
				IsStatic:      strings.Contains(line, "static "),
			})
		} else if m := regexutil.MatchGroups(javaImportPattern, line); m != nil {
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

func isPrecededByAnnotation(lines []string, declLine int, annotation string) bool {
	for i := declLine - 1; i >= 0; i-- {
		l := trim(lines[i])
		if l == "" {
			continue
		}
		return strings.HasPrefix(l, annotation)
	}
	return false
}
