// Package extract implements SymbolExtractor: per-language, regex-driven
// line-scan state machines that turn source bytes into an IndexedFile.
// There is one extractor function per supported language family; dispatch
// selects by language tag. No extractor builds or consults an AST; every
// one works line-by-line over literal text, per the engine's regex-first
// design.
package extract

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/benjamix95/codigo-sub004/internal/classify"
	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

// languageExtractor is the shared shape every per-language extractor
// implements: given the file's lines, return its import list and symbols.
type languageExtractor func(lines []string, lang types.Language) ([]string, []types.IndexedSymbol)

var extractors = map[types.Language]languageExtractor{
	types.LangSwift:            extractSwift,
	types.LangPython:           extractPython,
	types.LangJavaScript:       extractJSFamily,
	types.LangJavaScriptReact:  extractJSFamily,
	types.LangTypeScript:       extractJSFamily,
	types.LangTypeScriptReact:  extractJSFamily,
	types.LangGo:               extractGo,
	types.LangRust:             extractRust,
	types.LangJava:             extractJava,
	types.LangKotlin:           extractKotlin,
	types.LangRuby:             extractRuby,
	types.LangPHP:              extractPHP,
	types.LangCSharp:           extractCSharp,
	types.LangC:                extractCFamily,
	types.LangCPP:              extractCFamily,
	types.LangObjectiveC:       extractCFamily,
	types.LangObjectiveCPP:     extractCFamily,
	types.LangCHeader:          extractCFamily,
}

// Extract reads file bytes already loaded by the caller and produces the
// file's IndexedFile record. langOverride, when non-empty, replaces the
// extension-derived language tag.
func Extract(absPath, relPath string, content []byte, langOverride types.Language) (types.IndexedFile, bool) {
	if !utf8.Valid(content) {
		return types.IndexedFile{}, false
	}

	lang := langOverride
	if lang == "" {
		lang = classify.FromPath(relPath)
	}

	text := string(content)
	lines := strings.Split(text, "\n")

	file := types.IndexedFile{
		RelativePath: relPath,
		AbsolutePath: absPath,
		Language:     lang,
		LineCount:    len(lines),
		Size:         int64(len(content)),
		IndexedAt:    time.Now(),
		ContentHash:  regexutil.FNV1a64(content),
	}

	if !classify.IsExtractorEligible(lang) {
		return file, true
	}

	fn, ok := extractors[lang]
	if !ok {
		return file, true
	}

	imports, symbols := fn(lines, lang)
	file.Imports = dedupePreserveOrder(imports)
	file.Symbols = symbols
	for i := range file.Symbols {
		file.Symbols[i].FilePath = relPath
		file.Symbols[i].Language = lang
	}
	return file, true
}

func dedupePreserveOrder(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
