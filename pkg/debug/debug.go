// Package debug provides conditional debug logging for showcase.
//
// Debug logging is enabled by setting the SHOWCASE_DEBUG environment variable
// or passing --debug:
//
//	SHOWCASE_DEBUG=1 showcase 2>debug.log
//
// When enabled, debug messages are written to stderr with timestamps. While
// the TUI is running and stderr is a terminal, showcase points the log at
// $SHOWCASE_DEBUG_LOG (default: showcase-debug.log in the temp dir) so log
// lines do not draw over the screen.
// When disabled (default), all debug functions are no-ops.
package debug

import (
	"io"
	"log"
	"os"
	"time"
)

const prefix = "[SHOWCASE_DEBUG] "

var (
	// enabled is true when SHOWCASE_DEBUG env var is set
	enabled bool
	// logger writes to stderr with [SHOWCASE_DEBUG] prefix
	logger *log.Logger
)

func init() {
	if os.Getenv("SHOWCASE_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, prefix, log.Ltime|log.Lmicroseconds)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled allows programmatic control of debug logging.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, prefix, log.Ltime|log.Lmicroseconds)
	}
}

// SetOutput redirects debug output. The TUI owns stderr's terminal while
// running, so callers may point the log at a file instead.
func SetOutput(w io.Writer) {
	if logger == nil {
		logger = log.New(w, prefix, log.Ltime|log.Lmicroseconds)
		return
	}
	logger.SetOutput(w)
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !enabled || !cond {
		return
	}
	logger.Printf(format, args...)
}
