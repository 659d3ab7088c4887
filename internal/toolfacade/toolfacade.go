// Package toolfacade implements ToolFacade: a thin request router that
// translates named tool invocations with string-keyed arguments into
// IndexCore calls and formats results as human/LLM-readable text blocks.
package toolfacade

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benjamix95/codigo-sub004/internal/debug"
	cixerrors "github.com/benjamix95/codigo-sub004/internal/errors"
	"github.com/benjamix95/codigo-sub004/internal/indexcore"
	"github.com/benjamix95/codigo-sub004/internal/types"
	"github.com/benjamix95/codigo-sub004/pkg/pathutil"
)

// maxBodyChars caps every rendered response body.
const maxBodyChars = 8000

// ToolStatus is the closed enum of the two terminal tool-event states;
// "started" is emitted by the caller before Invoke runs.
type ToolStatus string

const (
	StatusCompleted ToolStatus = "completed"
	StatusFailed    ToolStatus = "failed"
)

// Response is the "completed"/"failed" event the facade emits for one tool
// invocation.
type Response struct {
	ToolCallID string
	Tool       string
	Status     ToolStatus
	Title      string
	Output     string
	DurationMs int64
	Detail     string
	OK         bool
}

// Facade owns a reference to one IndexCore and dispatches named tool
// invocations to it.
type Facade struct {
	core         *indexcore.Core
	defaultRoot  string
	excludePaths []string
}

// New returns a Facade routing to core, defaulting EnsureIndexed's
// first-call workspace root to defaultRoot with excludePaths applied on
// top of the built-in excluded-directory set.
func New(core *indexcore.Core, defaultRoot string, excludePaths ...string) *Facade {
	return &Facade{core: core, defaultRoot: defaultRoot, excludePaths: excludePaths}
}

// kindAliases lets callers request a loose category name instead of an
// exact SymbolKind; a requested alias expands to the set it covers.
var kindAliases = map[string][]types.SymbolKind{
	"function": {types.KindFunction, types.KindMethod},
	"func":     {types.KindFunction, types.KindMethod},
	"property": {types.KindProperty, types.KindConstant, types.KindVariable},
	"var":      {types.KindProperty, types.KindConstant, types.KindVariable},
	"let":      {types.KindProperty, types.KindConstant, types.KindVariable},
	"type":     {types.KindClass, types.KindStruct, types.KindEnum, types.KindProtocol, types.KindInterface, types.KindTrait},
}

func resolveKinds(raw string) []types.SymbolKind {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return nil
	}
	if kinds, ok := kindAliases[raw]; ok {
		return kinds
	}
	return []types.SymbolKind{types.SymbolKind(raw)}
}

func singleKind(raw string) *types.SymbolKind {
	kinds := resolveKinds(raw)
	if len(kinds) == 0 {
		return nil
	}
	k := kinds[0]
	return &k
}

// Invoke dispatches tool by name with args (a flat string-keyed argument
// map) and returns its completed/failed event.
// The caller is responsible for emitting the paired "started" event before
// calling Invoke; Invoke always returns the paired terminal event, never an
// error; failures are reported as Response{Status: StatusFailed}.
func (f *Facade) Invoke(ctx context.Context, toolCallID, tool string, args map[string]string) Response {
	start := time.Now()
	debug.LogFacade("invoke tool=%s args=%v", tool, args)

	if f.core != nil {
		if err := f.core.EnsureIndexed(ctx, f.defaultRoot, f.excludePaths); err != nil {
			return f.fail(toolCallID, tool, start, fmt.Errorf("ensure indexed: %w", err))
		}
	}

	handler, ok := dispatch[tool]
	if !ok {
		err := cixerrors.NewUnknownToolError(tool)
		return f.fail(toolCallID, tool, start, err)
	}

	title, body, detail, err := handler(f, args)
	if err != nil {
		return f.fail(toolCallID, tool, start, err)
	}
	return Response{
		ToolCallID: toolCallID,
		Tool:       tool,
		Status:     StatusCompleted,
		Title:      title,
		Output:     truncate(body, maxBodyChars),
		DurationMs: time.Since(start).Milliseconds(),
		Detail:     detail,
		OK:         true,
	}
}

func (f *Facade) fail(toolCallID, tool string, start time.Time, err error) Response {
	debug.LogFacade("tool %s failed: %v", tool, err)
	return Response{
		ToolCallID: toolCallID,
		Tool:       tool,
		Status:     StatusFailed,
		Title:      fmt.Sprintf("%s failed", tool),
		Output:     err.Error(),
		DurationMs: time.Since(start).Milliseconds(),
		OK:         false,
	}
}

type handlerFunc func(*Facade, map[string]string) (title, body, detail string, err error)

var dispatch = map[string]handlerFunc{
	"codebase_search":   (*Facade).handleCodebaseSearch,
	"find_symbol":       (*Facade).handleFindSymbol,
	"list_symbols":      (*Facade).handleListSymbols,
	"find_references":   (*Facade).handleFindReferences,
	"project_structure": (*Facade).handleProjectStructure,
	"file_outline":      (*Facade).handleFileOutline,
	"find_files":        (*Facade).handleFindFiles,
	"codebase_stats":    (*Facade).handleCodebaseStats,
	"dependency_graph":  (*Facade).handleDependencyGraph,
	"list_types":        (*Facade).handleListTypes,
	"list_tests":        (*Facade).handleListTests,
	"index_status":      (*Facade).handleIndexStatus,
	"reindex":           (*Facade).handleReindex,
}

func requireArg(args map[string]string, tool, name string) (string, error) {
	v, ok := args[name]
	if !ok || strings.TrimSpace(v) == "" {
		return "", cixerrors.NewInvalidArgumentError(tool, name)
	}
	return v, nil
}

// requirePathArg fetches a required path argument, normalizing an absolute
// path to its workspace-relative form so callers can pass either.
func (f *Facade) requirePathArg(args map[string]string, tool, name string) (string, error) {
	v, err := requireArg(args, tool, name)
	if err != nil {
		return "", err
	}
	return pathutil.ToRelative(v, f.defaultRoot), nil
}

func parseIntArg(args map[string]string, name string, def int) int {
	v, ok := args[name]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func parseBoolArg(args map[string]string, name string, def bool) bool {
	v, ok := args[name]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// handleCodebaseSearch: semanticGrep -> fallback findSymbols.
func (f *Facade) handleCodebaseSearch(args map[string]string) (string, string, string, error) {
	query, err := requireArg(args, "codebase_search", "query")
	if err != nil {
		return "", "", "", err
	}
	kinds := resolveKinds(args["kind"])
	filePattern := args["filePattern"]

	grep := f.core.SemanticGrep(query, filePattern, kinds, nil, 50)
	if len(grep) > 0 {
		var sb strings.Builder
		for _, r := range grep {
			fmt.Fprintf(&sb, "%s (%s) %s:%d\n  %s\n", r.Symbol.QualifiedName, r.Symbol.Kind, r.Symbol.FilePath, r.Symbol.Line, r.Symbol.Signature)
		}
		return fmt.Sprintf("codebase_search: %q", query), sb.String(), fmt.Sprintf("%d matches", len(grep)), nil
	}

	kindPtr := singleKind(args["kind"])
	found := f.core.FindSymbols(query, kindPtr, filePattern, 50)
	return renderSymbolResult("codebase_search", query, found)
}

// handleFindSymbol: findExactSymbol -> fallback findSymbols.
func (f *Facade) handleFindSymbol(args map[string]string) (string, string, string, error) {
	query, err := requireArg(args, "find_symbol", "query")
	if err != nil {
		return "", "", "", err
	}
	kindPtr := singleKind(args["kind"])

	exact := f.core.FindExactSymbol(query, kindPtr)
	if len(exact) > 0 {
		return renderSymbolResult("find_symbol", query, indexcore.SymbolResult{Results: exact})
	}
	found := f.core.FindSymbols(query, kindPtr, "", 50)
	return renderSymbolResult("find_symbol", query, found)
}

func renderSymbolResult(tool, query string, result indexcore.SymbolResult) (string, string, string, error) {
	if len(result.Results) == 0 {
		body := "No symbols found."
		if result.Suggestion != nil {
			body = fmt.Sprintf("No symbols found. Did you mean %q?", *result.Suggestion)
		}
		return fmt.Sprintf("%s: %q", tool, query), body, "0 results", nil
	}
	var sb strings.Builder
	for _, s := range result.Results {
		fmt.Fprintf(&sb, "[%s] %s %s %s:%d\n", s.AccessLevel, s.Kind, s.QualifiedName, s.FilePath, s.Line)
	}
	return fmt.Sprintf("%s: %q", tool, query), sb.String(), fmt.Sprintf("%d results", len(result.Results)), nil
}

// handleListSymbols: symbolsInFile, with fuzzy findFiles fallback.
func (f *Facade) handleListSymbols(args map[string]string) (string, string, string, error) {
	path, err := f.requirePathArg(args, "list_symbols", "path")
	if err != nil {
		return "", "", "", err
	}
	syms := f.core.SymbolsInFile(path)
	if len(syms) == 0 {
		if files, _ := f.core.FindFiles(path, "", 1); len(files) > 0 {
			path = files[0].Node.RelativePath
			syms = f.core.SymbolsInFile(path)
		}
	}
	var sb strings.Builder
	for _, s := range syms {
		fmt.Fprintf(&sb, "[%s] %s %s (L%d)\n", s.AccessLevel, s.Kind, s.QualifiedName, s.Line)
	}
	return fmt.Sprintf("list_symbols: %s", path), sb.String(), fmt.Sprintf("%d symbols", len(syms)), nil
}

// handleFindReferences.
func (f *Facade) handleFindReferences(args map[string]string) (string, string, string, error) {
	query, err := requireArg(args, "find_references", "query")
	if err != nil {
		return "", "", "", err
	}
	refs := pathutil.ToRelativeSymbolReferences(f.core.FindReferences(query, 100), f.defaultRoot)
	var sb strings.Builder
	for _, r := range refs {
		tag := "use"
		if r.IsDefinition {
			tag = "def"
		}
		fmt.Fprintf(&sb, "[%s] %s:%d  %s\n", tag, r.FilePath, r.Line, r.ContextLine)
	}
	return fmt.Sprintf("find_references: %q", query), sb.String(), fmt.Sprintf("%d references", len(refs)), nil
}

// handleProjectStructure.
func (f *Facade) handleProjectStructure(args map[string]string) (string, string, string, error) {
	maxDepth := parseIntArg(args, "maxDepth", 6)
	if maxDepth > 6 {
		maxDepth = 6
	}
	includeHidden := parseBoolArg(args, "includeHidden", false)
	body := f.core.ProjectTree(maxDepth, 200, includeHidden)
	return "project_structure", body, "", nil
}

// handleFileOutline: fileOutline with fuzzy fallback.
func (f *Facade) handleFileOutline(args map[string]string) (string, string, string, error) {
	path, err := f.requirePathArg(args, "file_outline", "path")
	if err != nil {
		return "", "", "", err
	}
	outline, ok := f.core.FileOutline(path)
	if !ok {
		if files, _ := f.core.FindFiles(path, "", 1); len(files) > 0 {
			path = files[0].Node.RelativePath
			outline, ok = f.core.FileOutline(path)
		}
	}
	if !ok {
		return fmt.Sprintf("file_outline: %s", path), "File not found.", "0 symbols", nil
	}
	return fmt.Sprintf("file_outline: %s", path), outline, "", nil
}

// handleFindFiles: findFiles with glob fallback.
func (f *Facade) handleFindFiles(args map[string]string) (string, string, string, error) {
	query, err := requireArg(args, "find_files", "query")
	if err != nil {
		return "", "", "", err
	}
	ext := args["extension"]
	results, suggestion := f.core.FindFiles(query, ext, 50)
	if len(results) == 0 {
		if nodes := f.core.Glob(query, 50); len(nodes) > 0 {
			var sb strings.Builder
			for _, n := range nodes {
				fmt.Fprintf(&sb, "%s\n", n.RelativePath)
			}
			return fmt.Sprintf("find_files: %q", query), sb.String(), fmt.Sprintf("%d results (glob)", len(nodes)), nil
		}
		body := "No files found."
		if suggestion != nil {
			body = fmt.Sprintf("No files found. Did you mean %q?", *suggestion)
		}
		return fmt.Sprintf("find_files: %q", query), body, "0 results", nil
	}
	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "%s (score %d)\n", r.Node.RelativePath, r.Score)
	}
	return fmt.Sprintf("find_files: %q", query), sb.String(), fmt.Sprintf("%d results", len(results)), nil
}

// handleCodebaseStats: stats + status.
func (f *Facade) handleCodebaseStats(_ map[string]string) (string, string, string, error) {
	stats := f.core.ComputeStats()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Files: %d  Directories: %d  Total size: %d bytes\n", stats.FileCount, stats.DirectoryCount, stats.TotalSize)
	fmt.Fprintf(&sb, "Status: %s\n\n", f.core.Summary())
	sb.WriteString("Languages:\n")
	for lang, n := range stats.LanguageCounts {
		fmt.Fprintf(&sb, "  %s: %d\n", lang, n)
	}
	sb.WriteString("\nLargest files:\n")
	for _, n := range stats.TopLargestFiles {
		fmt.Fprintf(&sb, "  %s (%d bytes)\n", n.RelativePath, n.Size)
	}
	if stats.DeepestFile != nil {
		fmt.Fprintf(&sb, "\nDeepest file: %s (depth %d)\n", stats.DeepestFile.RelativePath, stats.DeepestFile.Depth)
	}
	return "codebase_stats", sb.String(), "", nil
}

// handleDependencyGraph: fileDependencies.
func (f *Facade) handleDependencyGraph(args map[string]string) (string, string, string, error) {
	path, err := f.requirePathArg(args, "dependency_graph", "path")
	if err != nil {
		return "", "", "", err
	}
	imports, importedBy := f.core.FileDependencies(path)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Imports (%d):\n", len(imports))
	for _, m := range imports {
		fmt.Fprintf(&sb, "  %s\n", m)
	}
	fmt.Fprintf(&sb, "\nImported by (%d):\n", len(importedBy))
	for _, p := range importedBy {
		fmt.Fprintf(&sb, "  %s\n", p)
	}
	return fmt.Sprintf("dependency_graph: %s", path), sb.String(), "", nil
}

// handleListTypes: allTypes.
func (f *Facade) handleListTypes(_ map[string]string) (string, string, string, error) {
	found := f.core.AllTypes()
	var sb strings.Builder
	for _, t := range found {
		fmt.Fprintf(&sb, "[%s] %s %s %s:%d\n", t.AccessLevel, t.Kind, t.QualifiedName, t.FilePath, t.Line)
	}
	return "list_types", sb.String(), fmt.Sprintf("%d types", len(found)), nil
}

// handleListTests: allTests.
func (f *Facade) handleListTests(_ map[string]string) (string, string, string, error) {
	tests := f.core.AllTests()
	var sb strings.Builder
	for _, t := range tests {
		fmt.Fprintf(&sb, "%s %s:%d\n", t.QualifiedName, t.FilePath, t.Line)
	}
	return "list_tests", sb.String(), fmt.Sprintf("%d tests", len(tests)), nil
}

// handleIndexStatus: status/summaryText.
func (f *Facade) handleIndexStatus(_ map[string]string) (string, string, string, error) {
	return "index_status", f.core.Summary(), string(f.core.Status()), nil
}

// handleReindex: incrementalUpdate if ready, else indexWorkspace.
func (f *Facade) handleReindex(args map[string]string) (string, string, string, error) {
	ctx := context.Background()
	if f.core.Status() == types.StatusReady {
		result, err := f.core.IncrementalUpdate(ctx)
		if err != nil {
			return "", "", "", err
		}
		return "reindex", fmt.Sprintf("Incremental update: %d files updated, %d new files, %dms", result.UpdatedFiles, result.AddedFiles, result.DurationMs),
			fmt.Sprintf("%d updated", result.UpdatedFiles), nil
	}

	root := args["root"]
	if root == "" {
		root = f.defaultRoot
	}
	result, err := f.core.IndexWorkspace(ctx, []string{root}, f.excludePaths)
	if err != nil {
		return "", "", "", err
	}
	return "reindex", fmt.Sprintf("Full index: %d files scanned, %d symbols extracted, %dms", result.FilesScanned, result.SymbolsExtracted, result.DurationMs),
		fmt.Sprintf("%d files", result.FilesScanned), nil
}

// StartedEvent builds the "started" event a caller should emit before
// calling Invoke.
type StartedEvent struct {
	ToolCallID string
	Tool       string
	Title      string
	Query      string
}

func NewStartedEvent(toolCallID, tool string, args map[string]string) StartedEvent {
	query := args["query"]
	if query == "" {
		query = args["path"]
	}
	return StartedEvent{ToolCallID: toolCallID, Tool: tool, Title: fmt.Sprintf("Running %s", tool), Query: query}
}
