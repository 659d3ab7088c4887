package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

// extractJSFamily is shared by javascript, javascript-react, typescript, and
// typescript-react: the declaration shapes are the same across all four,
// modulo TypeScript-only constructs (interface, type alias) which simply
// never match in plain JS source.
const (
	jsImportFromPattern = `^\s*import\s+.*?\bfrom\s+['"]([^'"]+)['"]`
	jsImportBarePattern = `^\s*import\s+['"]([^'"]+)['"]`
	jsClassPattern      = `^\s*(?:export\s+(?:default\s+)?)?class\s+([A-Za-z_$][A-Za-z0-9_$]*)(?:\s+extends\s+([A-Za-z_$][A-Za-z0-9_$.]*))?(?:\s+implements\s+([A-Za-z_$][A-Za-z0-9_$.,\s]*))?`
	jsInterfacePattern  = `^\s*(?:export\s+)?interface\s+([A-Za-z_$][A-Za-z0-9_$]*)`
	jsTypeAliasPattern  = `^\s*(?:export\s+)?type\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=`
	jsEnumPattern       = `^\s*(?:export\s+)?enum\s+([A-Za-z_$][A-Za-z0-9_$]*)`
	jsFunctionPattern   = `^\s*(?:export\s+(?:default\s+)?)?(?:async\s+)?function\s*\*?\s+([A-Za-z_$][A-Za-z0-9_$]*)`
	jsArrowConstPattern = `^(?:export\s+)?const\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*(?:async\s+)?\(.*\)\s*(?::[^=]+)?=>`
	jsVarPattern        = `^(const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=`
	jsMethodPattern     = `^\s*(?:public\s+|private\s+|protected\s+)?(?:static\s+)?(?:async\s+)?(?:get\s+|set\s+)?([A-Za-z_$][A-Za-z0-9_$]*)\s*\([^;]*$`
)

func extractJSFamily(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
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
		case regexutil.MatchGroups(jsClassPattern, line) != nil:
			m := regexutil.MatchGroups(jsClassPattern, line)
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
		case regexutil.MatchGroups(jsInterfacePattern, line) != nil:
			m := regexutil.MatchGroups(jsInterfacePattern, line)
			name := m[1]
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindInterface, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		case regexutil.MatchGroups(jsEnumPattern, line) != nil:
			m := regexutil.MatchGroups(jsEnumPattern, line)
			name := m[1]
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindEnum, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		case regexutil.MatchGroups(jsTypeAliasPattern, line) != nil:
			m := regexutil.MatchGroups(jsTypeAliasPattern, line)
			name := m[1]
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: types.KindTypeAlias, Line: i + 1, EndLine: i + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		case regexutil.MatchGroups(jsFunctionPattern, line) != nil:
			m := regexutil.MatchGroups(jsFunctionPattern, line)
			name := m[1]
			kind := types.KindFunction
			if isJSTestName(name) {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: name,
				Signature: types.TruncateSignature(lt), Documentation: docCommentAbove(lines, i, "//"),
			})
		case regexutil.MatchGroups(jsArrowConstPattern, line) != nil:
			m := regexutil.MatchGroups(jsArrowConstPattern, line)
			name := m[1]
			kind := types.KindFunction
			if isJSTestName(name) {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			if endLine == i && !strings.Contains(line, "{") {
				endLine = i // single-expression arrow, no block body
			}
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: name,
				Signature: types.TruncateSignature(lt), Documentation: docCommentAbove(lines, i, "//"),
			})
		case container != "" && depth == containerDepth+1 && regexutil.MatchGroups(jsMethodPattern, line) != nil:
			m := regexutil.MatchGroups(jsMethodPattern, line)
			name := m[1]
			if name == "if" || name == "for" || name == "while" || name == "switch" || name == "catch" {
				break
			}
			kind := types.KindMethod
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: endLine + 1,
				AccessLevel: types.AccessPublic, QualifiedName: qualifiedName(container, name),
				ContainerName: container, Signature: types.TruncateSignature(lt),
				IsStatic: strings.Contains(line, "static "),
			})
		case depth == 0 && regexutil.MatchGroups(jsVarPattern, line) != nil:
			m := regexutil.MatchGroups(jsVarPattern, line)
			name := m[2]
			kind := types.KindVariable
			if m[1] == "const" {
				kind = types.KindConstant
			}
			symbols = append(symbols, types.IndexedSymbol{
				Name: name, Kind: kind, Line: i + 1, EndLine: i + 1,
				AccessLevel: types.AccessPublic, QualifiedName: name,
				Signature: types.TruncateSignature(lt),
			})
		default:
			if m := regexutil.MatchGroups(jsImportFromPattern, line); m != nil {
				imports = append(imports, m[1])
			} else if m := regexutil.MatchGroups(jsImportBarePattern, line); m != nil {
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

func isJSTestName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "test") || strings.HasPrefix(lower, "it") || strings.HasPrefix(lower, "describe")
}
