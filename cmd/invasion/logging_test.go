package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.invasion/invasion.log")
	if err != nil {
		t.Fatalf("expandHome failed: %v", err)
	}
	if want := filepath.Join(home, ".invasion", "invasion.log"); got != want {
		t.Errorf("expandHome = %q, expected %q", got, want)
	}

	if got, _ := expandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestOpenLogFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "invasion.log")

	f, err := openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile failed: %v", err)
	}
	if _, err := f.WriteString("first\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	// Reopening appends.
	f, err = openLogFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	f.WriteString("second\n")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file = %q, expected both lines", data)
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	old := flagLogPath
	flagLogPath = filepath.Join(t.TempDir(), "invasion.log")
	t.Cleanup(func() { flagLogPath = old })

	logger, closeLog := newLogger(true)
	logger.Info("session started", "high_score", 120)
	closeLog()

	data, err := os.ReadFile(flagLogPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file = %q, expected the message", data)
	}
}
