package app

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	if f := SetupLogging(false); f != nil {
		f.Close()
		t.Fatal("expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Fatalf("log output is %v, expected io.Discard", log.Writer())
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	f := SetupLogging(true)
	if f == nil {
		t.Fatal("expected a log file when debug=true")
	}
	defer f.Close()

	log.Println("seeded board")

	info, err := os.Stat(filepath.Join(dir, logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("log file is empty")
	}
}

func TestSetupLoggingWarnsWhenLogDirIsUnusable(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	// A regular file where the log directory should be.
	if err := os.WriteFile(logDir, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var warn bytes.Buffer
	if f := setupLogging(true, &warn); f != nil {
		f.Close()
		t.Fatal("expected no log file when logs/ is not a directory")
	}
	if !strings.Contains(warn.String(), "debug log disabled") {
		t.Fatalf("warning %q does not mention the disabled log", warn.String())
	}
	if log.Writer() != io.Discard {
		t.Fatalf("log output is %v, expected io.Discard", log.Writer())
	}
}

func TestSetupLoggingQuietWithoutDebug(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	var warn bytes.Buffer
	if f := setupLogging(false, &warn); f != nil {
		f.Close()
		t.Fatal("expected nil log file when debug=false")
	}
	if warn.Len() != 0 {
		t.Fatalf("unexpected warning %q", warn.String())
	}
}
