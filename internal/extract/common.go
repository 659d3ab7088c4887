package extract

import (
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/types"
)

// trim is shorthand for strings.TrimSpace, used throughout the extractors.
func trim(s string) string { return strings.TrimSpace(s) }

// docCommentAbove collects contiguous `///`/`//` (or a trailing `/** ... */`
// block, including `* ...` continuation lines) immediately above declLine,
// joins them with spaces, and caps the result at 500 chars. lineComment
// selects the line-comment prefix; the `/* ... */` block forms are always
// recognized.
func docCommentAbove(lines []string, declLine int, lineComment string) string {
	var collected []string
	i := declLine - 1
	for i >= 0 {
		l := trim(lines[i])
		switch {
		case l == "":
			i = -1 // a blank line breaks contiguity with the declaration
		case lineComment != "" && strings.HasPrefix(l, lineComment):
			body := strings.TrimPrefix(l, lineComment)
			// `///` and `//!` doc-comment forms leave a marker char behind
			// after the base prefix is stripped.
			body = strings.TrimPrefix(body, "/")
			body = strings.TrimPrefix(body, "!")
			collected = append([]string{strings.TrimSpace(body)}, collected...)
			i--
		case strings.HasPrefix(l, "*") && !strings.HasPrefix(l, "*/"):
			collected = append([]string{strings.TrimPrefix(strings.TrimPrefix(l, "*"), " ")}, collected...)
			i--
		case strings.HasSuffix(l, "*/"):
			// walk up through a /** ... */ block
			body := strings.TrimSuffix(l, "*/")
			body = strings.TrimPrefix(body, "/**")
			body = strings.TrimPrefix(body, "/*")
			if trim(body) != "" {
				collected = append([]string{trim(body)}, collected...)
			}
			i--
			for i >= 0 {
				bl := trim(lines[i])
				if strings.HasPrefix(bl, "/**") || strings.HasPrefix(bl, "/*") {
					content := strings.TrimPrefix(strings.TrimPrefix(bl, "/**"), "/*")
					if trim(content) != "" {
						collected = append([]string{trim(content)}, collected...)
					}
					i--
					break
				}
				content := strings.TrimPrefix(bl, "*")
				collected = append([]string{trim(content)}, collected...)
				i--
			}
		default:
			i = -1
		}
	}
	return types.TruncateDocumentation(strings.Join(collected, " "))
}

// pythonDocstring scans up to 20 lines starting at headerLine+1 for a
// triple-quoted docstring (single-line or multi-line), returning its text
// truncated to 500 chars, or "" if none is found.
func pythonDocstring(lines []string, headerLine int) string {
	const scanLimit = 20
	for i := headerLine + 1; i < len(lines) && i <= headerLine+scanLimit; i++ {
		l := trim(lines[i])
		if l == "" {
			continue
		}
		for _, quote := range []string{`"""`, "'''"} {
			if !strings.HasPrefix(l, quote) {
				continue
			}
			rest := strings.TrimPrefix(l, quote)
			if idx := strings.Index(rest, quote); idx >= 0 {
				return types.TruncateDocumentation(trim(rest[:idx]))
			}
			var body []string
			if trim(rest) != "" {
				body = append(body, trim(rest))
			}
			for j := i + 1; j < len(lines) && j <= headerLine+scanLimit; j++ {
				if idx := strings.Index(lines[j], quote); idx >= 0 {
					if trim(lines[j][:idx]) != "" {
						body = append(body, trim(lines[j][:idx]))
					}
					return types.TruncateDocumentation(strings.Join(body, " "))
				}
				body = append(body, trim(lines[j]))
			}
			return types.TruncateDocumentation(strings.Join(body, " "))
		}
		return ""
	}
	return ""
}

// qualifiedName joins container and name the engine's way: "Container.name"
// when inside a container, else the bare name.
func qualifiedName(container, name string) string {
	if container == "" {
		return name
	}
	return container + "." + name
}

// callableKind returns method when inside a container, else function.
func callableKind(container string) types.SymbolKind {
	if container != "" {
		return types.KindMethod
	}
	return types.KindFunction
}

// indentDepth returns the number of leading space/tab runes on line.
func indentDepth(line string) int {
	n := 0
	for _, ch := range line {
		if ch == ' ' || ch == '\t' {
			n++
			continue
		}
		break
	}
	return n
}
