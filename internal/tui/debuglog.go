// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"fmt"
	"os"
	"time"
)

// debugPath enables the side-channel debug log. The TUI owns the
// terminal, so normal logging would corrupt the screen; point
// QUIZDECK_DEBUG at a file and tail it instead.
var debugPath = os.Getenv("QUIZDECK_DEBUG")

// DebugLog appends a formatted line to the debug file. No-op unless
// QUIZDECK_DEBUG is set. Failures are swallowed on purpose.
func DebugLog(format string, args ...any) {
	if debugPath == "" {
		return
	}
	f, err := os.OpenFile(debugPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, time.Now().Format("15:04:05.000")+" "+format+"\n", args...)
}
