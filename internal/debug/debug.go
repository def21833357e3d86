// Package debug provides opt-in diagnostic logging. Output is disabled by
// default and never goes to stdio while serving MCP, where stray writes
// would corrupt the protocol stream.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// EnableDebug can be flipped at build time:
// go build -ldflags "-X github.com/standardbeagle/idcomplete/internal/debug.EnableDebug=true"
var EnableDebug = "false"

var (
	mu      sync.Mutex
	output  io.Writer
	mcpMode bool
)

// SetMCPMode suppresses all debug output to stdio for the lifetime of an
// MCP session. Set by the mcp command before the server starts.
func SetMCPMode(enabled bool) {
	mu.Lock()
	mcpMode = enabled
	mu.Unlock()
}

// SetOutput directs debug output to w. Pass nil to fall back to stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
}

// Enabled reports whether debug logging is active, via the build flag or
// the IDCOMPLETE_DEBUG environment variable.
func Enabled() bool {
	mu.Lock()
	suppressed := mcpMode && output == nil
	mu.Unlock()
	if suppressed {
		return false
	}
	if EnableDebug == "true" {
		return true
	}
	v := os.Getenv("IDCOMPLETE_DEBUG")
	return v == "1" || v == "true"
}

// Logf writes a timestamped debug line when debug logging is active.
func Logf(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	mu.Lock()
	w := output
	mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
