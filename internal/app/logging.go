package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "termlife.log"
)

// SetupLogging routes the standard logger. Stdout is the display, so logs go
// to a file under logs/ when debug is set and are discarded otherwise. The
// returned file is nil when nothing was opened; the caller closes it.
func SetupLogging(debug bool) *os.File {
	return setupLogging(debug, os.Stderr)
}

// setupLogging reports a log file that cannot be opened on warn; it is called
// before the terminal is taken over, so the line stays visible.
func setupLogging(debug bool, warn io.Writer) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(warn, "termlife: debug log disabled: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	path := filepath.Join(logDir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(warn, "termlife: debug log disabled: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
