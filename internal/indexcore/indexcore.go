// Package indexcore implements IndexCore: the single authoritative
// in-memory store for the codebase indexing engine. It owns every lookup
// map the engine maintains, enforces single-writer discipline over them,
// drives full and incremental indexing, and answers every symbol/file
// query the engine exposes.
package indexcore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/benjamix95/codigo-sub004/internal/debug"
	cixerrors "github.com/benjamix95/codigo-sub004/internal/errors"
	"github.com/benjamix95/codigo-sub004/internal/extract"
	"github.com/benjamix95/codigo-sub004/internal/filetree"
	"github.com/benjamix95/codigo-sub004/internal/regexutil"
	"github.com/benjamix95/codigo-sub004/internal/types"
)

// maxParallelWorkers caps the errgroup pool used to parse files off the
// single-writer lock; file I/O and regex execution never hold the lock,
// only addIndexedFile/removeIndexedFile do.
const maxParallelWorkers = 8

// Core is the single authoritative in-memory index. Every field below the
// mutex line is guarded by mu; all mutating and reading operations acquire
// it. The goal is serialization, not parallelism; a plain mutex-guarded
// struct is a faithful realization of that.
type Core struct {
	mu sync.Mutex

	fileTrees   map[string]*types.FileNode // root absolute path -> root node
	allNodes    map[string]*types.FileNode // relativePath -> node (files + dirs)
	indexed     map[string]types.IndexedFile
	byName      map[string][]types.IndexedSymbol // lower(name) -> symbols
	byFile      map[string][]types.IndexedSymbol
	byKind      map[types.SymbolKind][]types.IndexedSymbol
	importGraph map[string][]string // relativePath -> imported module strings
	reverseImp  map[string][]string // module string -> importers
	hashes      map[string]uint64   // absolutePath -> content hash

	currentRoots    []string
	excludedPaths   []string
	totalScanned    int
	totalSymbols    int
	lastDurationMs  int64
	lastFullIndexAt time.Time
	status          types.IndexStatus

	maxFileSize  int64 // per-file size cap actually enforced; never above types.MaxFileSize
	maxFileCount int   // per-index file count cap actually enforced; never above types.MaxIndexedFiles
}

// New returns an empty, idle Core.
func New() *Core {
	c := &Core{
		maxFileSize:  types.MaxFileSize,
		maxFileCount: types.MaxIndexedFiles,
	}
	c.reset()
	return c
}

// SetCaps narrows the per-file size and per-index file count caps to the
// smaller of value and the engine's hard ceiling (types.MaxFileSize /
// types.MaxIndexedFiles); a zero or negative value leaves the current cap
// unchanged. Caps only ever get tighter, never looser, than the engine's
// built-in limits.
func (c *Core) SetCaps(maxFileSize int64, maxFileCount int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if maxFileSize > 0 && maxFileSize < c.maxFileSize {
		c.maxFileSize = maxFileSize
	}
	if maxFileCount > 0 && maxFileCount < c.maxFileCount {
		c.maxFileCount = maxFileCount
	}
}

func (c *Core) reset() {
	c.fileTrees = make(map[string]*types.FileNode)
	c.allNodes = make(map[string]*types.FileNode)
	c.indexed = make(map[string]types.IndexedFile)
	c.byName = make(map[string][]types.IndexedSymbol)
	c.byFile = make(map[string][]types.IndexedSymbol)
	c.byKind = make(map[types.SymbolKind][]types.IndexedSymbol)
	c.importGraph = make(map[string][]string)
	c.reverseImp = make(map[string][]string)
	c.hashes = make(map[string]uint64)
	c.totalScanned = 0
	c.totalSymbols = 0
	c.status = types.StatusIdle
}

// IndexResult summarizes an indexWorkspace run.
type IndexResult struct {
	FilesScanned     int
	SymbolsExtracted int
	DurationMs       int64
	Roots            []string
}

// IncrementalResult summarizes an incrementalUpdate run.
type IncrementalResult struct {
	UpdatedFiles int
	AddedFiles   int
	DurationMs   int64
}

type parseOutcome struct {
	file types.IndexedFile
	err  error // a cixerrors skip kind; the file is dropped, never the pass
}

// IndexWorkspace performs a full rebuild: clears every map, walks each
// root, extracts every source file under the 1 MiB / 50,000-file caps, and
// rebuilds the import graph.
func (c *Core) IndexWorkspace(ctx context.Context, roots []string, excludedPaths []string) (IndexResult, error) {
	start := time.Now()

	c.mu.Lock()
	c.currentRoots = append([]string(nil), roots...)
	c.excludedPaths = append([]string(nil), excludedPaths...)
	c.reset()
	c.status = types.StatusIndexing
	c.mu.Unlock()

	debug.LogIndex("indexWorkspace starting: %d roots", len(roots))

	for _, root := range roots {
		tree := filetree.BuildFileTree(root, "", 0, filetree.BuildOptions{ExcludedPaths: excludedPaths})
		c.mu.Lock()
		c.fileTrees[root] = tree
		filetree.Flatten(tree, c.allNodes)
		c.mu.Unlock()
	}

	c.mu.Lock()
	candidates := filetree.CollectSourceFiles(c.allNodes)
	maxFileCount := c.maxFileCount
	maxFileSize := c.maxFileSize
	if len(candidates) > maxFileCount {
		candidates = candidates[:maxFileCount]
	}
	c.mu.Unlock()

	if err := c.parseAndApply(ctx, candidates, maxFileSize); err != nil {
		return IndexResult{}, err
	}

	c.mu.Lock()
	c.rebuildImportGraphLocked()
	duration := time.Since(start).Milliseconds()
	c.lastDurationMs = duration
	c.lastFullIndexAt = time.Now()
	c.status = types.StatusReady
	result := IndexResult{
		FilesScanned:     c.totalScanned,
		SymbolsExtracted: c.totalSymbols,
		DurationMs:       duration,
		Roots:            append([]string(nil), roots...),
	}
	c.mu.Unlock()

	debug.LogIndex("indexWorkspace done: %d files, %d symbols, %dms", result.FilesScanned, result.SymbolsExtracted, result.DurationMs)
	return result, nil
}

// parseAndApply extracts every candidate node using a bounded worker pool,
// then applies results to the maps one at a time under the lock, in the
// order nodes were submitted, preserving per-file add/remove ordering
// even though extraction itself runs concurrently.
func (c *Core) parseAndApply(ctx context.Context, candidates []*types.FileNode, maxFileSize int64) error {
	outcomes := make([]parseOutcome, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelWorkers)
	for i, node := range candidates {
		i, node := i, node
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			file, err := extractOne(node.AbsolutePath, node.RelativePath, maxFileSize)
			outcomes[i] = parseOutcome{file: file, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var skipped cixerrors.SkippedFiles
	c.mu.Lock()
	for _, outcome := range outcomes {
		if outcome.err != nil {
			skipped.Add(outcome.err)
			continue
		}
		c.addIndexedFileLocked(outcome.file)
	}
	c.mu.Unlock()

	if err := skipped.Err(); err != nil {
		debug.LogIndex("pass completed with skips: %v", err)
	}
	return nil
}

// extractOne reads and extracts a single file, classifying every skip as
// one of the typed non-fatal errors. The caller drops the file and keeps
// going.
func extractOne(abs, rel string, maxFileSize int64) (types.IndexedFile, error) {
	content, err := os.ReadFile(abs)
	if err != nil {
		return types.IndexedFile{}, cixerrors.NewFileUnreadableError(abs, err)
	}
	if int64(len(content)) > maxFileSize {
		return types.IndexedFile{}, cixerrors.NewOverCapError(abs, cixerrors.OverCapFileSize, maxFileSize, int64(len(content)))
	}
	file, ok := extract.Extract(abs, rel, content, "")
	if !ok {
		debug.LogExtract("skip non-utf8 file %s", abs)
		return types.IndexedFile{}, cixerrors.NewFileUnreadableError(abs, errInvalidUTF8)
	}
	return file, nil
}

var errInvalidUTF8 = errors.New("not valid UTF-8")

// IndexSingleFile removes any existing entry for rel and re-extracts it
// unconditionally, with no staleness check, unlike IncrementalUpdate.
func (c *Core) IndexSingleFile(abs, rel string) (bool, error) {
	c.mu.Lock()
	maxFileSize := c.maxFileSize
	c.mu.Unlock()

	file, err := extractOne(abs, rel, maxFileSize)
	if err != nil {
		debug.LogIndex("single-file reindex of %s skipped: %v", rel, err)
		return false, nil //nolint: nilerr // skip kinds are non-fatal
	}

	c.mu.Lock()
	c.removeIndexedFileLocked(rel)
	c.addIndexedFileLocked(file)
	c.rebuildImportGraphLocked()
	c.mu.Unlock()
	return true, nil
}

// IncrementalUpdate re-scans every known source-file node; a file is only
// re-extracted when its filesystem mtime is newer than its last IndexedAt
// AND its content hash actually changed. New files discovered by re-walking
// the roots are added. Deletions are a known, documented weakness: files
// removed from disk are not pruned here.
func (c *Core) IncrementalUpdate(ctx context.Context) (IncrementalResult, error) {
	start := time.Now()

	c.mu.Lock()
	roots := append([]string(nil), c.currentRoots...)
	excluded := append([]string(nil), c.excludedPaths...)
	maxFileSize := c.maxFileSize
	knownNodes := make([]*types.FileNode, 0, len(c.allNodes))
	for _, n := range c.allNodes {
		knownNodes = append(knownNodes, n)
	}
	c.mu.Unlock()

	var skipped cixerrors.SkippedFiles
	var toReindex []*types.FileNode
	for _, node := range knownNodes {
		if !node.IsSourceFile() {
			continue
		}
		info, err := os.Stat(node.AbsolutePath)
		if err != nil {
			continue // missing on disk: leave stale entry, per the documented weakness
		}

		c.mu.Lock()
		prev, had := c.indexed[node.RelativePath]
		c.mu.Unlock()
		if had && !prev.IndexedAt.Before(info.ModTime()) {
			continue
		}

		content, err := os.ReadFile(node.AbsolutePath)
		if err != nil {
			continue
		}
		newHash := regexutil.FNV1a64(content)
		c.mu.Lock()
		oldHash, hadHash := c.hashes[node.AbsolutePath]
		c.mu.Unlock()
		if hadHash && oldHash == newHash {
			continue
		}
		toReindex = append(toReindex, node)
	}

	updated := 0
	if len(toReindex) > 0 {
		outcomes := make([]parseOutcome, len(toReindex))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxParallelWorkers)
		for i, node := range toReindex {
			i, node := i, node
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				file, err := extractOne(node.AbsolutePath, node.RelativePath, maxFileSize)
				outcomes[i] = parseOutcome{file: file, err: err}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return IncrementalResult{}, err
		}

		c.mu.Lock()
		for _, outcome := range outcomes {
			if outcome.err != nil {
				skipped.Add(outcome.err)
				continue
			}
			c.removeIndexedFileLocked(outcome.file.RelativePath)
			c.addIndexedFileLocked(outcome.file)
			updated++
		}
		c.mu.Unlock()
	}

	added := 0
	var newSourceNodes []*types.FileNode
	for _, root := range roots {
		tree := filetree.BuildFileTree(root, "", 0, filetree.BuildOptions{ExcludedPaths: excluded})
		freshNodes := make(map[string]*types.FileNode)
		filetree.Flatten(tree, freshNodes)

		c.mu.Lock()
		c.fileTrees[root] = tree
		for rel, node := range freshNodes {
			_, known := c.allNodes[rel]
			c.allNodes[rel] = node
			if !known && node.IsSourceFile() {
				newSourceNodes = append(newSourceNodes, node)
			}
		}
		c.mu.Unlock()
	}

	if len(newSourceNodes) > 0 {
		outcomes := make([]parseOutcome, len(newSourceNodes))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxParallelWorkers)
		for i, node := range newSourceNodes {
			i, node := i, node
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				file, err := extractOne(node.AbsolutePath, node.RelativePath, maxFileSize)
				outcomes[i] = parseOutcome{file: file, err: err}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return IncrementalResult{}, err
		}
		c.mu.Lock()
		for _, outcome := range outcomes {
			if outcome.err != nil {
				skipped.Add(outcome.err)
				continue
			}
			c.addIndexedFileLocked(outcome.file)
			added++
			updated++
		}
		c.mu.Unlock()
	}

	c.mu.Lock()
	c.rebuildImportGraphLocked()
	duration := time.Since(start).Milliseconds()
	c.lastDurationMs = duration
	c.mu.Unlock()

	if err := skipped.Err(); err != nil {
		debug.LogIndex("incremental update completed with skips: %v", err)
	}
	return IncrementalResult{UpdatedFiles: updated, AddedFiles: added, DurationMs: duration}, nil
}

// addIndexedFileLocked inserts file into indexed/hashes and every symbol
// into byName/byFile/byKind. Caller holds mu. Together with
// removeIndexedFileLocked these are the only writers of the symbol maps.
func (c *Core) addIndexedFileLocked(file types.IndexedFile) {
	c.indexed[file.RelativePath] = file
	c.hashes[file.AbsolutePath] = file.ContentHash
	c.totalScanned++
	for _, sym := range file.Symbols {
		key := lower(sym.Name)
		c.byName[key] = append(c.byName[key], sym)
		c.byFile[sym.FilePath] = append(c.byFile[sym.FilePath], sym)
		c.byKind[sym.Kind] = append(c.byKind[sym.Kind], sym)
		c.totalSymbols++
	}
}

// removeIndexedFileLocked reverses addIndexedFileLocked for rel, purging
// empty key buckets. Caller holds mu.
func (c *Core) removeIndexedFileLocked(rel string) {
	file, ok := c.indexed[rel]
	if !ok {
		return
	}
	for _, sym := range file.Symbols {
		key := lower(sym.Name)
		c.byName[key] = removeSymbolByID(c.byName[key], sym.ID())
		if len(c.byName[key]) == 0 {
			delete(c.byName, key)
		}
		c.byKind[sym.Kind] = removeSymbolByID(c.byKind[sym.Kind], sym.ID())
		if len(c.byKind[sym.Kind]) == 0 {
			delete(c.byKind, sym.Kind)
		}
		c.totalSymbols--
	}
	delete(c.byFile, rel)
	delete(c.hashes, file.AbsolutePath)
	delete(c.indexed, rel)
	c.totalScanned--
}

func removeSymbolByID(list []types.IndexedSymbol, id string) []types.IndexedSymbol {
	out := list[:0]
	for _, s := range list {
		if s.ID() != id {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// rebuildImportGraphLocked recomputes importGraph/reverseImp from the
// current indexed set. Caller holds mu.
func (c *Core) rebuildImportGraphLocked() {
	c.importGraph = make(map[string][]string)
	c.reverseImp = make(map[string][]string)
	paths := make([]string, 0, len(c.indexed))
	for p := range c.indexed {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		file := c.indexed[p]
		c.importGraph[p] = file.Imports
		for _, m := range file.Imports {
			c.reverseImp[m] = append(c.reverseImp[m], p)
		}
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Status returns the core's current lifecycle state.
func (c *Core) Status() types.IndexStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// EnsureIndexed lazily triggers a full index when the core has never been
// indexed; the ToolFacade relies on this so the first tool call on an idle
// index just works.
func (c *Core) EnsureIndexed(ctx context.Context, defaultRoot string, excludedPaths []string) error {
	c.mu.Lock()
	status := c.status
	c.mu.Unlock()
	if status != types.StatusIdle {
		return nil
	}
	root, err := filepath.Abs(defaultRoot)
	if err != nil {
		root = defaultRoot
	}
	_, err = c.IndexWorkspace(ctx, []string{root}, excludedPaths)
	return err
}
