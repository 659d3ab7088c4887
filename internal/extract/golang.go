package extract

import (
	"strings"
	"unicode"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	goImportSinglePattern = `^\s*import\s+"([^"]+)"`
	goImportBlockEntry    = `^\s*(?:[A-Za-z_][A-Za-z0-9_]*\s+)?"([^"]+)"`
	goTypePattern         = `^type\s+([A-Za-z_][A-Za-z0-9_]*)\s+(struct|interface)\b`
	goMethodPattern       = `^func\s+\(\s*[A-Za-z_][A-Za-z0-9_]*\s+\*?([A-Za-z_][A-Za-z0-9_]*)\s*\)\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`
	goFuncPattern         = `^func\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`
	goConstVarPattern     = `^(const|var)\s+([A-Za-z_][A-Za-z0-9_]*)`
)

func goAccess(name string) types.AccessLevel {
	if name != "" && unicode.IsUpper(rune(name[0])) {
		return types.AccessPublic
	}
	return types.AccessPrivate
}

func extractGo(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
	var imports []string
	var symbols []types.IndexedSymbol

	inImportBlock := false

	for i, line := range lines {
		lt := trim(line)
		if lt == "" || strings.HasPrefix(lt, "//") {
			continue
		}

		if inImportBlock {
			if lt == ")" {
				inImportBlock = false
				continue
			}
			if m := regexutil.MatchGroups(goImportBlockEntry, line); m != nil {
				imports = append(imports, m[1])
			}
			continue
		}
		if lt == "import (" {
			inImportBlock = true
			continue
		}

		if m := regexutil.MatchGroups(goImportSinglePattern, line); m != nil {
			imports = append(imports, m[1])
			continue
		}

		if m := regexutil.MatchGroups(goTypePattern, line); m != nil {
			name := m[1]
			kind := types.KindStruct
			if m[2] == "interface" {
				kind = types.KindInterface
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name:          name,
				Kind:          kind,
				Line:          i + 1,
				EndLine:       endLine + 1,
				AccessLevel:   goAccess(name),
				QualifiedName: name,
				Signature:     types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
			continue
		}

		if m := regexutil.MatchGroups(goMethodPattern, line); m != nil {
			container := m[1]
			name := m[2]
			kind := types.KindMethod
			if strings.HasPrefix(name, "Test") || strings.HasPrefix(name, "Benchmark") {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name:          name,
				Kind:          kind,
				Line:          i + 1,
				EndLine:       endLine + 1,
				AccessLevel:   goAccess(name),
				QualifiedName: qualifiedName(container, name),
				ContainerName: container,
				Signature:     types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
			continue
		}

		if m := regexutil.MatchGroups(goFuncPattern, line); m != nil {
			name := m[1]
			kind := types.KindFunction
			if strings.HasPrefix(name, "Test") || strings.HasPrefix(name, "Benchmark") {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name:          name,
				Kind:          kind,
				Line:          i + 1,
				EndLine:       endLine + 1,
				AccessLevel:   goAccess(name),
				QualifiedName: name,
				Signature:     types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
			continue
		}

		if m := regexutil.MatchGroups(goConstVarPattern, line); m != nil {
			name := m[2]
			kind := types.KindVariable
			if m[1] == "const" {
				kind = types.KindConstant
			}
			symbols = append(symbols, types.IndexedSymbol{
				Name:          name,
				Kind:          kind,
				Line:          i + 1,
				EndLine:       i + 1,
				AccessLevel:   goAccess(name),
				QualifiedName: name,
				Signature:     types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		}
	}

	return imports, symbols
}
