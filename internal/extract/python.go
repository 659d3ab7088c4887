package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	pyImportPattern     = `^\s*import\s+([A-Za-z_][A-Za-z0-9_.]*)`
	pyFromImportPattern = `^\s*from\s+([A-Za-z_][A-Za-z0-9_.]*)\s+import\b`
	pyClassPattern      = `^(\s*)class\s+([A-Za-z_][A-Za-z0-9_]*)\s*(\(([^)]*)\))?\s*:`
	pyDefPattern        = `^(\s*)(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`
	pyConstantPattern   = `^([A-Za-z_][A-Za-z0-9_]*)\s*=`
)

func pyAccess(name string) types.AccessLevel {
	switch {
	case strings.HasPrefix(name, "__") && !strings.HasSuffix(name, "__"):
		return types.AccessPrivate
	case strings.HasPrefix(name, "_"):
		return types.AccessFilePrivate
	default:
		return types.AccessPublic
	}
}

func extractPython(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
	var imports []string
	var symbols []types.IndexedSymbol

	container := ""
	containerIndent := -1

	for i, line := range lines {
		lt := trim(line)
		if lt == "" || strings.HasPrefix(lt, "#") {
			continue
		}

		indent := indentDepth(line)
		if container != "" && indent <= containerIndent {
			container = ""
			containerIndent = -1
		}

		if m := regexutil.MatchGroups(pyClassPattern, line); m != nil {
			name := m[2]
			var bases []string
			for _, b := range strings.Split(m[4], ",") {
				if t := trim(b); t != "" {
					bases = append(bases, t)
				}
			}
			endLine := regexutil.FindPythonBlockEnd(lines, i, indent)
			symbols = append(symbols, types.IndexedSymbol{
				Name:          name,
				Kind:          types.KindClass,
				Line:          i + 1,
				EndLine:       endLine + 1,
				AccessLevel:   pyAccess(name),
				QualifiedName: qualifiedName(container, name),
				ContainerName: container,
				Signature:     types.TruncateSignature(lt),
				Documentation: pythonDocstring(lines, i),
				Inherits:      bases,
			})
			container = name
			containerIndent = indent
			continue
		}

		if m := regexutil.MatchGroups(pyDefPattern, line); m != nil {
			name := m[2]
			inContainer := container != "" && indent > containerIndent
			methodContainer := ""
			if inContainer {
				methodContainer = container
			}
			kind := callableKind(methodContainer)
			endLine := regexutil.FindPythonBlockEnd(lines, i, indent)
			symbols = append(symbols, types.IndexedSymbol{
				Name:          name,
				Kind:          kind,
				Line:          i + 1,
				EndLine:       endLine + 1,
				AccessLevel:   pyAccess(name),
				QualifiedName: qualifiedName(methodContainer, name),
				ContainerName: methodContainer,
				Signature:     types.TruncateSignature(lt),
				Documentation: pythonDocstring(lines, i),
				IsStatic:      isPrecededByStaticmethod(lines, i),
			})
			continue
		}

		if indent == 0 && container == "" {
			if m := regexutil.MatchGroups(pyConstantPattern, line); m != nil {
				name := m[1]
				if name == strings.ToUpper(name) && len(name) > 1 {
					symbols = append(symbols, types.IndexedSymbol{
						Name:          name,
						Kind:          types.KindConstant,
						Line:          i + 1,
						EndLine:       i + 1,
						AccessLevel:   pyAccess(name),
						QualifiedName: name,
						Signature:     types.TruncateSignature(lt),
					})
				}
				continue
			}
		}

		if m := regexutil.MatchGroups(pyFromImportPattern, line); m != nil {
			imports = append(imports, m[1])
		} else if m := regexutil.MatchGroups(pyImportPattern, line); m != nil {
			imports = append(imports, m[1])
		}
	}

	return imports, symbols
}

func isPrecededByStaticmethod(lines []string, declLine int) bool {
	for i := declLine - 1; i >= 0; i-- {
		l := trim(lines[i])
		if l == "" {
			continue
		}
		return l == "@staticmethod"
	}
	return false
}
