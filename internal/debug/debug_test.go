package debug

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetState restores the package globals a test mutated.
func resetState(t *testing.T) {
	t.Helper()
	prevEnable := EnableDebug
	t.Cleanup(func() {
		EnableDebug = prevEnable
		SetMCPMode(false)
		SetDebugOutput(nil)
		_ = CloseLogFile()
	})
}

func TestWriteSilentWhenDisabled(t *testing.T) {
	resetState(t)
	t.Setenv("DEBUG", "")
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "false"

	LogIndex("should not appear")
	assert.Empty(t, buf.String())
}

func TestWriteTagsChannel(t *testing.T) {
	resetState(t)
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"

	LogIndex("scanned %d files", 7)
	LogExtract("parsed %s", "a.go")
	LogFacade("dispatched %s", "find_symbol")
	LogMCP("server up")

	out := buf.String()
	assert.Contains(t, out, "index")
	assert.Contains(t, out, "scanned 7 files")
	assert.Contains(t, out, "extract")
	assert.Contains(t, out, "parsed a.go")
	assert.Contains(t, out, "facade")
	assert.Contains(t, out, "mcp")
	assert.Equal(t, 4, strings.Count(out, "\n"), "one line per log call")
}

func TestMCPModeMutesEverything(t *testing.T) {
	resetState(t)
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"
	SetMCPMode(true)

	LogIndex("should not appear")
	LogMCP("should not appear either")
	assert.Empty(t, buf.String())
}

func TestNilWriterIsSafe(t *testing.T) {
	resetState(t)
	SetDebugOutput(nil)
	EnableDebug = "true"

	LogIndex("goes nowhere")
	LogFacade("goes nowhere")
}

func TestFatalReturnsErrorAndLogs(t *testing.T) {
	resetState(t)
	var buf bytes.Buffer
	SetDebugOutput(&buf)

	err := Fatal("config broken: %s", "bad root")
	require.Error(t, err)
	assert.Equal(t, "config broken: bad root", err.Error())
	assert.Contains(t, buf.String(), "FATAL config broken: bad root")
}

func TestFatalSuppressedInMCPModeStillErrors(t *testing.T) {
	resetState(t)
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	SetMCPMode(true)

	err := Fatal("quiet failure")
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestInitLogFileRoundTrip(t *testing.T) {
	resetState(t)
	EnableDebug = "true"

	path, err := InitLogFile()
	require.NoError(t, err)
	require.NotEmpty(t, path)

	LogIndex("written to file")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")

	_ = os.Remove(path)
}

func TestConcurrentWrites(t *testing.T) {
	resetState(t)
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			LogIndex("goroutine %d", id)
			LogExtract("goroutine %d", id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "\n"))
}
