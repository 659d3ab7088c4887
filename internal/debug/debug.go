// Package debug is the engine's diagnostic log surface. It stays silent
// unless switched on (build flag or DEBUG env var) and is hard-muted while
// the process serves MCP over stdio, where any stray write would corrupt
// the JSON-RPC stream.
package debug

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnableDebug is a build-time switch:
//
//	go build -ldflags "-X github.com/benjamix95/codigo-sub004/internal/debug.EnableDebug=true"
//
// The DEBUG environment variable ("1" or "true") flips it at runtime.
var EnableDebug = "false"

// channel tags each log line with the subsystem that produced it.
type channel string

const (
	chanIndex   channel = "index"   // IndexCore lifecycle: full/incremental passes, skips
	chanExtract channel = "extract" // per-file extraction outcomes
	chanFacade  channel = "facade"  // tool dispatch and failures
	chanMCP     channel = "mcp"     // stdio server lifecycle
)

// logger serializes writes to the configured destination. mcpMode mutes it
// entirely, independent of the enable switch.
type logger struct {
	mu      sync.Mutex
	w       io.Writer
	file    *os.File
	mcpMode bool
}

var global logger

// SetMCPMode mutes or unmutes the logger for the lifetime of an MCP stdio
// session.
func SetMCPMode(on bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.mcpMode = on
}

// SetDebugOutput directs log lines at w; nil discards them.
func SetDebugOutput(w io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.w = w
}

// InitLogFile switches output to a timestamped file under the OS temp
// directory and returns its path. Pair with CloseLogFile.
func InitLogFile() (string, error) {
	global.mu.Lock()
	defer global.mu.Unlock()

	dir := filepath.Join(os.TempDir(), "cix-debug-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, "cix-"+time.Now().Format("20060102-150405")+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("create log file: %w", err)
	}

	global.file = f
	global.w = f
	return path, nil
}

// CloseLogFile closes the file opened by InitLogFile, if any.
func CloseLogFile() error {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.file == nil {
		return nil
	}
	err := global.file.Close()
	global.file = nil
	global.w = nil
	return err
}

func enabled() bool {
	if EnableDebug == "true" {
		return true
	}
	v := os.Getenv("DEBUG")
	return v == "1" || v == "true"
}

// write emits one tagged, timestamped line.
func (l *logger) write(ch channel, format string, args ...interface{}) {
	if !enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.mcpMode || l.w == nil {
		return
	}
	fmt.Fprintf(l.w, "%s %-7s %s\n", time.Now().Format("15:04:05.000"), ch, fmt.Sprintf(format, args...))
}

// LogIndex reports IndexCore lifecycle events: pass start and finish,
// skipped files, cap hits.
func LogIndex(format string, args ...interface{}) { global.write(chanIndex, format, args...) }

// LogExtract reports per-file extraction outcomes.
func LogExtract(format string, args ...interface{}) { global.write(chanExtract, format, args...) }

// LogFacade reports tool dispatch and failures.
func LogFacade(format string, args ...interface{}) { global.write(chanFacade, format, args...) }

// LogMCP reports stdio server lifecycle events.
func LogMCP(format string, args ...interface{}) { global.write(chanMCP, format, args...) }

// Fatal records an unrecoverable startup failure and returns it as an
// error for the caller to propagate. It never exits the process and never
// writes in MCP mode; the enable switch does not apply, since a fatal
// failure is worth a line whenever a destination is configured.
func Fatal(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	global.mu.Lock()
	if !global.mcpMode && global.w != nil {
		fmt.Fprintf(global.w, "FATAL %s\n", msg)
	}
	global.mu.Unlock()
	return errors.New(msg)
}
