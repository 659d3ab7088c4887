package indexcore

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/semantic"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

// defaultSearchLimit is findSymbols/findFiles/semanticGrep's limit=50 default.
const defaultSearchLimit = 50

var defaultStemmer = semantic.DefaultSemanticGrepStemmer

// SymbolResult wraps a ranked symbol list with an optional "did you mean"
// suggestion, present only when Results is empty.
type SymbolResult struct {
	Results    []types.IndexedSymbol
	Suggestion *string
}

// FindSymbols runs a four-pass ranked lookup: exact, prefix, substring
// (only while under limit), subsequence fuzzy (only while under limit/2).
// Case-insensitive throughout.
func (c *Core) FindSymbols(query string, kind *types.SymbolKind, fileFilter string, limit int) SymbolResult {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	q := strings.ToLower(query)
	fileFilter = strings.ToLower(fileFilter)

	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool)
	var out []types.IndexedSymbol

	add := func(syms []types.IndexedSymbol) {
		for _, s := range syms {
			if len(out) >= limit {
				return
			}
			if kind != nil && s.Kind != *kind {
				continue
			}
			if fileFilter != "" && !strings.Contains(strings.ToLower(s.FilePath), fileFilter) {
				continue
			}
			if seen[s.ID()] {
				continue
			}
			seen[s.ID()] = true
			out = append(out, s)
		}
	}

	add(c.byName[q])

	if len(out) < limit {
		var prefix []types.IndexedSymbol
		for name, syms := range c.byName {
			if name != q && strings.HasPrefix(name, q) {
				prefix = append(prefix, syms...)
			}
		}
		sort.Slice(prefix, func(i, j int) bool { return prefix[i].Name < prefix[j].Name })
		add(prefix)
	}

	if len(out) < limit {
		var substr []types.IndexedSymbol
		for name, syms := range c.byName {
			if name == q || strings.HasPrefix(name, q) {
				continue
			}
			if strings.Contains(name, q) {
				substr = append(substr, syms...)
			}
		}
		sort.Slice(substr, func(i, j int) bool { return substr[i].Name < substr[j].Name })
		add(substr)
	}

	if len(out) < limit/2 {
		var fuzzy []types.IndexedSymbol
		for name, syms := range c.byName {
			if strings.Contains(name, q) {
				continue
			}
			if regexutil.FuzzyMatch(q, name) {
				fuzzy = append(fuzzy, syms...)
			}
		}
		sort.Slice(fuzzy, func(i, j int) bool { return fuzzy[i].Name < fuzzy[j].Name })
		add(fuzzy)
	}

	rankSymbols(out, q)
	if len(out) > limit {
		out = out[:limit]
	}

	result := SymbolResult{Results: out}
	if len(out) == 0 {
		names := make([]string, 0, len(c.byName))
		for n := range c.byName {
			names = append(names, n)
		}
		if best, ok := semantic.Suggest(q, names); ok {
			result.Suggestion = &best
		}
	}
	return result
}

// rankSymbols sorts in place by priority: exact-match > prefix-match >
// higher access level > type-kinded > shorter name.
func rankSymbols(syms []types.IndexedSymbol, query string) {
	sort.SliceStable(syms, func(i, j int) bool {
		a, b := syms[i], syms[j]
		al, bl := strings.ToLower(a.Name), strings.ToLower(b.Name)

		aExact, bExact := al == query, bl == query
		if aExact != bExact {
			return aExact
		}
		aPrefix, bPrefix := strings.HasPrefix(al, query), strings.HasPrefix(bl, query)
		if aPrefix != bPrefix {
			return aPrefix
		}
		if a.AccessLevel != b.AccessLevel {
			return a.AccessLevel > b.AccessLevel
		}
		aType, bType := a.Kind.IsType(), b.Kind.IsType()
		if aType != bType {
			return aType
		}
		return len(a.Name) < len(b.Name)
	})
}

// FindExactSymbol is an unranked lookup by exact lowercased name,
// optionally filtered by kind.
func (c *Core) FindExactSymbol(name string, kind *types.SymbolKind) []types.IndexedSymbol {
	c.mu.Lock()
	defer c.mu.Unlock()
	syms := c.byName[strings.ToLower(name)]
	if kind == nil {
		return append([]types.IndexedSymbol(nil), syms...)
	}
	var out []types.IndexedSymbol
	for _, s := range syms {
		if s.Kind == *kind {
			out = append(out, s)
		}
	}
	return out
}

// SymbolsInFile returns the symbols recorded for relativePath, ordered by
// line (the order addIndexedFile inserted them in).
func (c *Core) SymbolsInFile(relativePath string) []types.IndexedSymbol {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]types.IndexedSymbol(nil), c.byFile[relativePath]...)
}

// AllTypes returns every symbol whose kind is a type declaration.
func (c *Core) AllTypes() []types.IndexedSymbol {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []types.IndexedSymbol
	for kind, syms := range c.byKind {
		if kind.IsType() {
			out = append(out, syms...)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QualifiedName < out[j].QualifiedName })
	return out
}

// AllTests returns every symbol of kind test.
func (c *Core) AllTests() []types.IndexedSymbol {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]types.IndexedSymbol(nil), c.byKind[types.KindTest]...)
	sort.Slice(out, func(i, j int) bool { return out[i].QualifiedName < out[j].QualifiedName })
	return out
}

// FileResult is one scored findFiles match.
type FileResult struct {
	Node  *types.FileNode
	Score int
}

// FindFiles runs a scored file-name search.
func (c *Core) FindFiles(query string, extensionFilter string, limit int) ([]FileResult, *string) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	q := strings.ToLower(query)
	extensionFilter = strings.ToLower(strings.TrimPrefix(extensionFilter, "."))

	c.mu.Lock()
	defer c.mu.Unlock()

	var scored []FileResult
	var names []string
	for _, node := range c.allNodes {
		if node.Kind != types.FileNodeFile {
			continue
		}
		names = append(names, node.Name)
		if extensionFilter != "" && node.Extension != extensionFilter {
			continue
		}
		score := scoreFileMatch(node, q)
		if score <= 0 {
			continue
		}
		scored = append(scored, FileResult{Node: node, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > limit {
		scored = scored[:limit]
	}

	if len(scored) == 0 {
		if best, ok := semantic.Suggest(query, names); ok {
			return scored, &best
		}
	}
	return scored, nil
}

func scoreFileMatch(node *types.FileNode, q string) int {
	nameLower := strings.ToLower(node.Name)
	pathLower := strings.ToLower(node.RelativePath)

	score := 0
	switch {
	case nameLower == q:
		score = 1000
	case strings.HasPrefix(nameLower, q):
		score = 800
	case strings.Contains(nameLower, q):
		score = 600
	case strings.Contains(pathLower, q):
		score = 400
	case regexutil.FuzzyMatch(q, nameLower):
		score = 200
	case regexutil.FuzzyMatch(q, pathLower):
		score = 100
	default:
		return 0
	}

	if node.IsSourceFile() {
		score += 10
	}
	bonus := 20 - node.Depth*2
	if bonus > 0 {
		score += bonus
	}
	return score
}

// Glob matches pattern (lowercased) against every known file's relative
// path, returning matches sorted by path and capped at limit.
func (c *Core) Glob(pattern string, limit int) []*types.FileNode {
	if limit <= 0 {
		limit = 200
	}
	pattern = strings.ToLower(pattern)

	c.mu.Lock()
	defer c.mu.Unlock()

	var paths []string
	byPath := make(map[string]*types.FileNode)
	for rel, node := range c.allNodes {
		if node.Kind != types.FileNodeFile {
			continue
		}
		if regexutil.GlobMatch(pattern, strings.ToLower(rel)) {
			paths = append(paths, rel)
			byPath[rel] = node
		}
	}
	sort.Strings(paths)
	if len(paths) > limit {
		paths = paths[:limit]
	}
	out := make([]*types.FileNode, 0, len(paths))
	for _, p := range paths {
		out = append(out, byPath[p])
	}
	return out
}

// FindReferences reports a symbol's definitions first, then scans every
// indexed file with a word-boundary regex for non-definition uses.
func (c *Core) FindReferences(symbolName string, limit int) []types.SymbolReference {
	if limit <= 0 {
		limit = 100
	}
	lowerName := strings.ToLower(symbolName)

	c.mu.Lock()
	files := make([]types.IndexedFile, 0, len(c.indexed))
	for _, f := range c.indexed {
		files = append(files, f)
	}
	allSyms := make([]types.IndexedSymbol, 0)
	for _, syms := range c.byName {
		allSyms = append(allSyms, syms...)
	}
	c.mu.Unlock()

	sort.Slice(files, func(i, j int) bool { return files[i].RelativePath < files[j].RelativePath })

	var out []types.SymbolReference
	definitionLines := make(map[string]map[int]bool) // filePath -> line -> is a recorded definition

	for _, s := range allSyms {
		if strings.ToLower(s.Name) != lowerName {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, types.SymbolReference{
			SymbolName:   s.Name,
			FilePath:     s.FilePath,
			Line:         s.Line,
			ContextLine:  s.Signature,
			IsDefinition: true,
		})
		if definitionLines[s.FilePath] == nil {
			definitionLines[s.FilePath] = make(map[int]bool)
		}
		definitionLines[s.FilePath][s.Line] = true
	}

	if len(out) >= limit {
		return out
	}

	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(symbolName) + `\b`)
	if err != nil {
		return out // RegexCompileFailure: treated as no-match, never fatal
	}

	for _, file := range files {
		lines := strings.Split(readFileContentForReferences(file), "\n")
		for i, line := range lines {
			if len(out) >= limit {
				return out
			}
			lineNo := i + 1
			if definitionLines[file.RelativePath][lineNo] {
				continue
			}
			if !re.MatchString(line) {
				continue
			}
			out = append(out, types.SymbolReference{
				SymbolName:   symbolName,
				FilePath:     file.RelativePath,
				Line:         lineNo,
				ContextLine:  strings.TrimSpace(line),
				IsDefinition: false,
			})
		}
	}
	return out
}

// readFileContentForReferences re-reads file bytes for the reference scan;
// IndexedFile does not retain source text, only symbols/imports/metadata.
func readFileContentForReferences(file types.IndexedFile) string {
	content, err := readFile(file.AbsolutePath)
	if err != nil {
		return ""
	}
	return content
}

// GrepResult is one semanticGrep match.
type GrepResult struct {
	Symbol types.IndexedSymbol
}

// SemanticGrep matches query against each candidate symbol's name,
// qualified name, signature, and documentation, widened with an additive
// Porter2-stemmed token test, tried when the literal substring check fails (never
// narrower than a plain literal-substring search would be).
func (c *Core) SemanticGrep(query string, filePattern string, kinds []types.SymbolKind, accessLevels []types.AccessLevel, limit int) []GrepResult {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	q := strings.ToLower(query)
	filePatternLower := strings.ToLower(filePattern)

	c.mu.Lock()
	defer c.mu.Unlock()

	var candidates []types.IndexedSymbol
	if len(kinds) > 0 {
		for _, k := range kinds {
			candidates = append(candidates, c.byKind[k]...)
		}
	} else {
		for _, syms := range c.byName {
			candidates = append(candidates, syms...)
		}
	}

	accessSet := make(map[types.AccessLevel]bool, len(accessLevels))
	for _, a := range accessLevels {
		accessSet[a] = true
	}

	var out []GrepResult
	for _, s := range candidates {
		if len(accessLevels) > 0 && !accessSet[s.AccessLevel] {
			continue
		}
		if filePattern != "" {
			fp := strings.ToLower(s.FilePath)
			if !strings.Contains(fp, filePatternLower) && !regexutil.GlobMatch(filePatternLower, fp) {
				continue
			}
		}
		if matchesSemanticQuery(q, s) {
			out = append(out, GrepResult{Symbol: s})
			if len(out) >= limit {
				break
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Symbol, out[j].Symbol
		al, bl := strings.ToLower(a.Name), strings.ToLower(b.Name)
		aExact, bExact := al == q, bl == q
		if aExact != bExact {
			return aExact
		}
		aPrefix, bPrefix := strings.HasPrefix(al, q), strings.HasPrefix(bl, q)
		if aPrefix != bPrefix {
			return aPrefix
		}
		return a.Name < b.Name
	})
	return out
}

func matchesSemanticQuery(q string, s types.IndexedSymbol) bool {
	fields := []string{s.Name, s.QualifiedName, s.Signature, s.Documentation}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
		if semantic.StemmedContains(defaultStemmer, q, f) {
			return true
		}
	}
	return false
}

// FileDependencies computes the "imported by" relation as a symmetric
// intersection of import lists rather than true reverse-import
// resolution. A documented approximation, not exact module resolution.
func (c *Core) FileDependencies(relativePath string) (imports []string, importedBy []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	file, ok := c.indexed[relativePath]
	if !ok {
		return nil, nil
	}
	imports = append([]string(nil), file.Imports...)

	mySet := make(map[string]bool, len(file.Imports))
	for _, m := range file.Imports {
		mySet[m] = true
	}

	var by []string
	for otherPath, other := range c.indexed {
		if otherPath == relativePath {
			continue
		}
		for _, m := range other.Imports {
			if mySet[m] {
				by = append(by, otherPath)
				break
			}
		}
	}
	sort.Strings(by)
	return imports, by
}

// ModuleGraph returns the raw import/reverse-import graphs, keyed exactly
// as importGraph/reverseImportGraph.
func (c *Core) ModuleGraph() (importGraph map[string][]string, reverseGraph map[string][]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	importGraph = make(map[string][]string, len(c.importGraph))
	for k, v := range c.importGraph {
		importGraph[k] = append([]string(nil), v...)
	}
	reverseGraph = make(map[string][]string, len(c.reverseImp))
	for k, v := range c.reverseImp {
		reverseGraph[k] = append([]string(nil), v...)
	}
	return importGraph, reverseGraph
}

// Stats summarizes the indexed workspace: counts, sizes, and language
// breakdown.
type Stats struct {
	FileCount       int
	DirectoryCount  int
	TotalSize       int64
	LanguageCounts  map[types.Language]int
	TopLargestFiles []*types.FileNode
	DeepestFile     *types.FileNode
}

func (c *Core) ComputeStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{LanguageCounts: make(map[types.Language]int)}
	var files []*types.FileNode
	for _, node := range c.allNodes {
		switch node.Kind {
		case types.FileNodeDirectory:
			stats.DirectoryCount++
		case types.FileNodeFile:
			stats.FileCount++
			stats.TotalSize += node.Size
			files = append(files, node)
			if node.IsSourceFile() {
				lang := langOf(node)
				stats.LanguageCounts[lang]++
			}
			if stats.DeepestFile == nil || node.Depth > stats.DeepestFile.Depth {
				stats.DeepestFile = node
			}
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Size > files[j].Size })
	if len(files) > 10 {
		files = files[:10]
	}
	stats.TopLargestFiles = files
	return stats
}

// Summary returns a short human-readable status line, used by
// status/summaryText and the reindex tool response.
func (c *Core) Summary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("status=%s files=%d symbols=%d lastFullIndexAt=%s durationMs=%d",
		c.status, len(c.indexed), c.totalSymbols, c.lastFullIndexAt.Format("2006-01-02T15:04:05"), c.lastDurationMs)
}
