// Package types holds the shared data model for the codebase indexing
// engine: language tags, symbol kinds, access levels, and the indexed
// record types produced by extraction and consumed by queries.
package types

import "strings"

// Language is a closed tag identifying a source language or markup format.
type Language string

const (
	LangSwift            Language = "swift"
	LangObjectiveC       Language = "objective-c"
	LangObjectiveCPP     Language = "objective-c++"
	LangC                Language = "c"
	LangCPP              Language = "c++"
	LangCHeader          Language = "c-header"
	LangPython           Language = "python"
	LangJavaScript       Language = "javascript"
	LangJavaScriptReact  Language = "javascript-react"
	LangTypeScript       Language = "typescript"
	LangTypeScriptReact  Language = "typescript-react"
	LangGo               Language = "go"
	LangRust             Language = "rust"
	LangJava             Language = "java"
	LangKotlin           Language = "kotlin"
	LangRuby             Language = "ruby"
	LangPHP              Language = "php"
	LangCSharp           Language = "c#"
	LangHTML             Language = "html"
	LangCSS              Language = "css"
	LangJSON             Language = "json"
	LangYAML             Language = "yaml"
	LangTOML             Language = "toml"
	LangXML              Language = "xml"
	LangMarkdown         Language = "markdown"
	LangShell            Language = "shell"
	LangSQL              Language = "sql"
	LangGraphQL          Language = "graphql"
	LangProto            Language = "proto"
	LangDart             Language = "dart"
	LangElixir           Language = "elixir"
	LangLua              Language = "lua"
	LangR                Language = "r"
	LangScala            Language = "scala"
	LangHaskell          Language = "haskell"
	LangZig              Language = "zig"
	LangUnknown          Language = "unknown"
)

// languageMeta describes the per-language metadata FileClassifier exposes.
type languageMeta struct {
	extensions     []string
	lineComment    string
	hasLineComment bool
	blockOpen      string
	blockClose     string
	hasBlock       bool
	extractable    bool
}

// languageRegistry maps each language tag to its metadata, including its
// ordered extension list; extensionToLanguage, built in init, is the inverse
// lookup from a lowercased, dot-less extension to its language tag.
var languageRegistry = map[Language]languageMeta{
	LangSwift:           {extensions: []string{"swift"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangObjectiveC:      {extensions: []string{"m"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangObjectiveCPP:    {extensions: []string{"mm"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangC:               {extensions: []string{"c"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangCPP:             {extensions: []string{"cpp", "cc", "cxx", "c++"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangCHeader:         {extensions: []string{"h", "hpp", "hh", "hxx"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangPython:          {extensions: []string{"py", "pyi"}, lineComment: "#", hasLineComment: true, extractable: true},
	LangJavaScript:      {extensions: []string{"js", "mjs", "cjs"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangJavaScriptReact: {extensions: []string{"jsx"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangTypeScript:      {extensions: []string{"ts", "mts", "cts"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangTypeScriptReact: {extensions: []string{"tsx"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangGo:              {extensions: []string{"go"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangRust:            {extensions: []string{"rs"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangJava:            {extensions: []string{"java"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangKotlin:          {extensions: []string{"kt", "kts"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangRuby:            {extensions: []string{"rb"}, lineComment: "#", hasLineComment: true, extractable: true},
	LangPHP:             {extensions: []string{"php"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangCSharp:          {extensions: []string{"cs"}, lineComment: "//", hasLineComment: true, blockOpen: "/*", blockClose: "*/", hasBlock: true, extractable: true},
	LangHTML:            {extensions: []string{"html", "htm"}},
	LangCSS:             {extensions: []string{"css", "scss", "sass", "less"}},
	LangJSON:            {extensions: []string{"json"}},
	LangYAML:            {extensions: []string{"yaml", "yml"}},
	LangTOML:            {extensions: []string{"toml"}},
	LangXML:             {extensions: []string{"xml"}},
	LangMarkdown:        {extensions: []string{"md", "markdown"}},
	LangShell:           {extensions: []string{"sh", "bash", "zsh"}, lineComment: "#", hasLineComment: true},
	LangSQL:             {extensions: []string{"sql"}, lineComment: "--", hasLineComment: true},
	LangGraphQL:         {extensions: []string{"graphql", "gql"}, lineComment: "#", hasLineComment: true},
	LangProto:           {extensions: []string{"proto"}, lineComment: "//", hasLineComment: true},
	LangDart:            {extensions: []string{"dart"}, lineComment: "//", hasLineComment: true},
	LangElixir:          {extensions: []string{"ex", "exs"}, lineComment: "#", hasLineComment: true},
	LangLua:             {extensions: []string{"lua"}, lineComment: "--", hasLineComment: true},
	LangR:               {extensions: []string{"r"}, lineComment: "#", hasLineComment: true},
	LangScala:           {extensions: []string{"scala"}, lineComment: "//", hasLineComment: true},
	LangHaskell:         {extensions: []string{"hs"}, lineComment: "--", hasLineComment: true},
	LangZig:             {extensions: []string{"zig"}, lineComment: "//", hasLineComment: true},
}

var extensionToLanguage map[string]Language

func init() {
	extensionToLanguage = make(map[string]Language)
	for lang, meta := range languageRegistry {
		for _, ext := range meta.extensions {
			extensionToLanguage[ext] = lang
		}
	}
}

// FromExtension lowercases ext (a bare extension, no leading dot) and
// returns the language tag it maps to, or LangUnknown.
func FromExtension(ext string) Language {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if lang, ok := extensionToLanguage[ext]; ok {
		return lang
	}
	return LangUnknown
}

// LineComment returns the language's line-comment prefix, if any.
func LineComment(lang Language) (string, bool) {
	meta, ok := languageRegistry[lang]
	if !ok {
		return "", false
	}
	return meta.lineComment, meta.hasLineComment
}

// BlockCommentDelimiters returns the language's block comment open/close
// markers, if any.
func BlockCommentDelimiters(lang Language) (open, close string, ok bool) {
	meta, found := languageRegistry[lang]
	if !found || !meta.hasBlock {
		return "", "", false
	}
	return meta.blockOpen, meta.blockClose, true
}

// CanonicalExtensions returns the ordered extension list registered for lang.
func CanonicalExtensions(lang Language) []string {
	meta, ok := languageRegistry[lang]
	if !ok {
		return nil
	}
	out := make([]string, len(meta.extensions))
	copy(out, meta.extensions)
	return out
}

// IsExtractorEligible reports whether a SymbolExtractor exists for lang.
func IsExtractorEligible(lang Language) bool {
	meta, ok := languageRegistry[lang]
	return ok && meta.extractable
}
