package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	cIncludePattern   = `^\s*#include\s*[<"]([^>"]+)[>"]`
	cClassPattern     = `^\s*(?:template\s*<[^>]*>\s*)?(class|struct|enum(?:\s+class)?)\s+([A-Za-z_][A-Za-z0-9_]*)(?:\s*:\s*(?:public|private|protected)?\s*([A-Za-z_][A-Za-z0-9_:,\s<>]*))?\s*\{?\s*$`
	cFunctionPattern  = `^\s*(?:(static|inline|virtual|extern)\s+)*[A-Za-z_][A-Za-z0-9_:<>,\s\*&]*[\s\*&]([A-Za-z_~][A-Za-z0-9_]*)\s*\(([^;]*)\)\s*(?:const\s*)?(?:override\s*)?\{?\s*$`
	cNamespacePattern = `^\s*namespace\s+([A-Za-z_][A-Za-z0-9_]*)\s*\{?\s*$`
)

// extractCFamily handles C, C++, Objective-C, Objective-C++ and C headers.
// Objective-C @interface/@implementation blocks follow the same brace-depth
// container tracking as C++ class/struct, since both delimit members with
// matching braces.
func extractCFamily(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
	var imports []string
	var symbols []types.IndexedSymbol

	container := ""
	containerDepth := -1
	depth := 0

	for i, line := range lines {
		lt := trim(line)
		if lt == "" || strings.HasPrefix(lt, "//") || strings.HasPrefix(lt, "*") || strings.HasPrefix(lt, "#define") {
			depth += braceDelta(line)
			continue
		}

		switch {
		case strings.HasPrefix(lt, "@interface") || strings.HasPrefix(lt, "@implementation"):
			name := objcInterfaceName(lt)
			if name != "" {
				kind := types.KindClass
				endLine := regexutil.FindBlockEnd(lines, i)
				symbols = append(symbols, types.IndexedSymbol{
					Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
					AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
					ContainerName: container, Signature: types.TruncateSignature(lt),
					Documentation: docCommentAbove(lines, i, "//"),
				})
				container = name
				containerDepth = depth
			}
		case regexutil.MatchGroups(cNamespacePattern, line) != nil:
			m := regexutil.MatchGroups(cNamespacePattern, line)
			symbols = append(symbols, types.IndexedSymbol{
				Name: m[1], Kind: types.KindModule, Line: i + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, m[1]),
				ContainerName: container, Signature: types.TruncateSignature(lt),
			})
		case regexutil.MatchGroups(cClassPattern, line) != nil:
			m := regexutil.MatchGroups(cClassPattern, line)
			name := m[2]
			kind := types.KindStruct
			switch {
			case strings.HasPrefix(m[1], "class"):
				kind = types.KindClass
			case strings.HasPrefix(m[1], "enum"):
				kind = types.KindEnum
			}
			var inherits []string
			for _, base := range strings.Split(m[3], ",") {
				if t := trim(base); t != "" {
					inherits = append(inherits, t)
				}
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"), Inherits: inherits,
			})
			container = name
			containerDepth = depth
		case regexutil.MatchGroups(cFunctionPattern, line) != nil:
			m := regexutil.MatchGroups(cFunctionPattern, line)
			name := m[2]
			if name != "if" && name != "for" && name != "while" && name != "switch" {
				kind := callableKind(container)
				endLine := regexutil.FindBlockEnd(lines, i)
				symbols = append(symbols, types.IndexedSymbol{
					Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
					AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
					ContainerName: container, Signature: types.TruncateSignature(lt),
					Documentation: docCommentAbove(lines, i, "//"),
					IsStatic:      strings.Contains(line, "static "),
				})
			}
		case regexutil.MatchGroups(cIncludePattern, line) != nil:
			imports = append(imports, regexutil.MatchGroups(cIncludePattern, line)[1])
		}

		depth += braceDelta(line)
		if container != "" && depth <= containerDepth {
			container = ""
			containerDepth = -1
		}
	}

	return imports, symbols
}

func objcInterfaceName(lt string) string {
	fields := strings.Fields(lt)
	if len(fields) < 2 {
		return ""
	}
	name := strings.TrimSuffix(fields[1], ":")
	if name == "" {
		return ""
	}
	return name
}
