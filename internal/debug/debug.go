// Package debug prints a trace of reader activity when UPROOT_DEBUG is set
// in the environment, mirroring the debug_print/UPROOT_DEBUG switch the
// Python reference reads from os.environ.
package debug

import (
	"fmt"
	"os"
)

var enabled = os.Getenv("UPROOT_DEBUG") != ""

// Enabled reports whether tracing output should be produced.
func Enabled() bool { return enabled }

// Printf prints a trace line when tracing is enabled; a no-op otherwise.
func Printf(format string, args ...interface{}) {
	if !enabled {
		return
	}
	fmt.Printf(format, args...)
}

// Trace logs a reader's name and how far the cursor moved while it ran.
// Readers call this around their own Read body rather than wrapping the
// cursor, since Cursor has no io.Reader/io.Writer shape to decorate.
func Trace(readerName string, startPos, endPos int) {
	if !enabled {
		return
	}
	fmt.Printf("%s: pos %d -> %d (%d bytes)\n", readerName, startPos, endPos, endPos-startPos)
}
