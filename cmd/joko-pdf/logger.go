package main

import (
	"fmt"
	"io"
)

// stderrLogger prints prefixed log lines. Debug lines need verbose.
type stderrLogger struct {
	w       io.Writer
	verbose bool
}

func (l stderrLogger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.w, "[DEBUG] joko-pdf: %s\n", fmt.Sprintf(format, args...))
}

func (l stderrLogger) Infof(format string, args ...any) {
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.w, "[INFO] joko-pdf: %s\n", fmt.Sprintf(format, args...))
}

func (l stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.w, "[ERROR] joko-pdf: %s\n", fmt.Sprintf(format, args...))
}
