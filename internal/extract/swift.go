package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

const (
	swiftImportPattern  = `^\s*import\s+([A-Za-z_][A-Za-z0-9_.]*)`
	swiftTypePattern    = `^(\s*)(?:(public|private|fileprivate|internal|open)\s+)?(?:final\s+)?(class|struct|enum|protocol|actor)\s+([A-Za-z_][A-Za-z0-9_]*)`
	swiftExtPattern     = `^(\s*)(?:(public|private|fileprivate|internal|open)\s+)?extension\s+([A-Za-z_][A-Za-z0-9_]*)`
	swiftFuncPattern    = `^(\s*)(?:(public|private|fileprivate|internal|open)\s+)?(?:static\s+|class\s+)?(?:override\s+)?(?:mutating\s+)?func\s+([A-Za-z_][A-Za-z0-9_]*)`
	swiftInitPattern    = `^(\s*)(?:(public|private|fileprivate|internal|open)\s+)?(?:convenience\s+|required\s+)?(init)\b`
	swiftLetVarPattern  = `^(\s*)(?:(public|private|fileprivate|internal|open)\s+)?(?:static\s+)?(let|var)\s+([A-Za-z_][A-Za-z0-9_]*)`
	swiftTypealiasPatt  = `^(\s*)(?:(public|private|fileprivate|internal|open)\s+)?typealias\s+([A-Za-z_][A-Za-z0-9_]*)`
	swiftAnnotPattern   = `^\s*@([A-Za-z_][A-Za-z0-9_]*)`
)

func swiftAccess(token string) types.AccessLevel {
	switch token {
	case "public":
		return types.AccessPublic
	case "private":
		return types.AccessPrivate
	case "fileprivate":
		return types.AccessFilePrivate
	case "open":
		return types.AccessOpen
	default:
		return types.AccessInternal
	}
}

func extractSwift(lines []string, _ types.Language) ([]string, []types.IndexedSymbol) {
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

		if m := regexutil.MatchGroups(swiftTypePattern, line); m != nil {
			kind := types.KindClass
			switch m[3] {
			case "struct":
				kind = types.KindStruct
			case "enum":
				kind = types.KindEnum
			case "protocol":
				kind = types.KindProtocol
			}
			name := m[4]
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name:              name,
				Kind:              kind,
				Line:              i + 1,
				EndLine:           endLine + 1,
				AccessLevel:       swiftAccess(m[2]),
				QualifiedName:     qualifiedName(container, name),
				ContainerName:     container,
				Signature:         types.TruncateSignature(lt),
				Documentation:     docCommentAbove(lines, i, "//"),
				Inherits:          swiftInheritance(line),
				GenericParameters: swiftGenerics(line),
				Annotations:       swiftAnnotationsAbove(lines, i),
			})
			container = name
			containerDepth = depth
		} else if m := regexutil.MatchGroups(swiftExtPattern, line); m != nil {
			name := m[3]
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name:          name,
				Kind:          types.KindExtension,
				Line:          i + 1,
				EndLine:       endLine + 1,
				AccessLevel:   swiftAccess(m[2]),
				QualifiedName: qualifiedName(container, name),
				ContainerName: container,
				Signature:     types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
				Inherits:      swiftInheritance(line),
			})
			container = name
			containerDepth = depth
		} else if m := regexutil.MatchGroups(swiftFuncPattern, line); m != nil {
			name := m[3]
			kind := callableKind(container)
			if container != "" && strings.HasPrefix(name, "test") {
				kind = types.KindTest
			}
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name:              name,
				Kind:              kind,
				Line:              i + 1,
				EndLine:           endLine + 1,
				AccessLevel:       swiftAccess(m[2]),
				QualifiedName:     qualifiedName(container, name),
				ContainerName:     container,
				Signature:         types.TruncateSignature(lt),
				Documentation:     docCommentAbove(lines, i, "//"),
				GenericParameters: swiftGenerics(line),
				Annotations:       swiftAnnotationsAbove(lines, i),
			})
		} else if m := regexutil.MatchGroups(swiftInitPattern, line); m != nil {
			endLine := regexutil.FindBlockEnd(lines, i)
			symbols = append(symbols, types.IndexedSymbol{
				Name:          "init",
				Kind:          callableKind(container),
				Line:          i + 1,
				EndLine:       endLine + 1,
				AccessLevel:   swiftAccess(m[2]),
				QualifiedName: qualifiedName(container, "init"),
				ContainerName: container,
				Signature:     types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		} else if m := regexutil.MatchGroups(swiftTypealiasPatt, line); m != nil {
			name := m[3]
			symbols = append(symbols, types.IndexedSymbol{
				Name:          name,
				Kind:          types.KindTypeAlias,
				Line:          i + 1,
				EndLine:       i + 1,
				AccessLevel:   swiftAccess(m[2]),
				QualifiedName: qualifiedName(container, name),
				ContainerName: container,
				Signature:     types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		} else if m := regexutil.MatchGroups(swiftLetVarPattern, line); m != nil {
			name := m[4]
			kind := types.KindVariable
			if m[3] == "let" {
				kind = types.KindConstant
			}
			symbols = append(symbols, types.IndexedSymbol{
				Name:          name,
				Kind:          kind,
				Line:          i + 1,
				EndLine:       i + 1,
				AccessLevel:   swiftAccess(m[2]),
				QualifiedName: qualifiedName(container, name),
				ContainerName: container,
				Signature:     types.TruncateSignature(lt),
				Documentation: docCommentAbove(lines, i, "//"),
			})
		} else if m := regexutil.MatchGroups(swiftImportPattern, line); m != nil {
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

func braceDelta(line string) int {
	delta := 0
	for _, ch := range line {
		switch ch {
		case '{':
			delta++
		case '}':
			delta--
		}
	}
	return delta
}

// swiftInheritance extracts the ": A, B" inheritance list, stopping at the
// first '{' or "where".
func swiftInheritance(line string) []string {
	colon := strings.Index(line, ":")
	if colon < 0 {
		return nil
	}
	rest := line[colon+1:]
	if idx := strings.Index(rest, "{"); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, "where"); idx >= 0 {
		rest = rest[:idx]
	}
	var out []string
	for _, part := range strings.Split(rest, ",") {
		if t := trim(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// swiftGenerics extracts "<...>" generic parameters, splitting on commas at
// angle-bracket depth zero relative to the opening bracket.
func swiftGenerics(line string) []string {
	start := strings.Index(line, "<")
	if start < 0 {
		return nil
	}
	depth := 0
	end := -1
	for i := start; i < len(line); i++ {
		switch line[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil
	}
	body := line[start+1 : end]
	var out []string
	depth = 0
	lastSplit := 0
	for i, ch := range body {
		switch ch {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				if t := trim(body[lastSplit:i]); t != "" {
					out = append(out, t)
				}
				lastSplit = i + 1
			}
		}
	}
	if t := trim(body[lastSplit:]); t != "" {
		out = append(out, t)
	}
	return out
}

// swiftAnnotationsAbove collects "@Name(...)" annotation lines immediately
// above declLine.
func swiftAnnotationsAbove(lines []string, declLine int) []string {
	var out []string
	for i := declLine - 1; i >= 0; i-- {
		l := trim(lines[i])
		if l == "" {
			break
		}
		m := regexutil.MatchGroups(swiftAnnotPattern, l)
		if m == nil {
			break
		}
		out = append([]string{m[1]}, out...)
	}
	return out
}
