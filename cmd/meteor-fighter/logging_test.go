package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var rotatedName = regexp.MustCompile(`^meteor-fighter-\d{8}-\d{6}\.log$`)

// useLog sets up logging inside a scratch directory and restores the standard logger afterwards
func useLog(t *testing.T, debug bool) *os.File {
	t.Helper()
	chdir(t, t.TempDir())
	f := setupLogging(debug)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		if f != nil {
			f.Close()
		}
	})
	return f
}

func readLog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestLogToFile(t *testing.T) {
	tests := []struct {
		debug, headless bool
		want            bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	for _, tt := range tests {
		if got := logToFile(tt.debug, tt.headless); got != tt.want {
			t.Errorf("logToFile(debug=%v, headless=%v) = %v", tt.debug, tt.headless, got)
		}
	}
}

func TestTerminalRunDiscardsLogs(t *testing.T) {
	if f := useLog(t, false); f != nil {
		t.Fatal("log file opened without debug")
	}
	if log.Writer() != io.Discard {
		t.Error("logs must not reach the terminal")
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("log directory created without debug")
	}
}

func TestDebugLogStartsWithBanner(t *testing.T) {
	if useLog(t, true) == nil {
		t.Fatal("no log file in debug")
	}
	log.Printf("[sim] ready")

	got := readLog(t)
	if !strings.Contains(got, "=== meteor-fighter started ===") {
		t.Errorf("banner missing from %q", got)
	}
	if !strings.Contains(got, "[sim] ready") {
		t.Error("log line not written to file")
	}
	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("debug logs written to the terminal")
	}
}

func TestOversizedLogIsRotated(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	big := make([]byte, maxLogSize+1)
	if err := os.WriteFile(filepath.Join(logDir, logFileName), big, 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		f.Close()
	})

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	var rotated []string
	for _, e := range entries {
		if rotatedName.MatchString(e.Name()) {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) != 1 {
		t.Fatalf("rotated files = %v, want one meteor-fighter-<timestamp>.log", rotated)
	}
	info, err := os.Stat(filepath.Join(logDir, rotated[0]))
	if err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("rotated file should keep the old contents: %v %v", info, err)
	}

	fresh := readLog(t)
	if strings.Count(fresh, "\n") != 1 || !strings.HasSuffix(fresh, "=== meteor-fighter started ===\n") {
		t.Errorf("fresh log = %q, want only the banner", fresh)
	}
}

func TestSmallLogIsAppended(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(logDir, logFileName), []byte("previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		f.Close()
	})

	got := readLog(t)
	if !strings.HasPrefix(got, "previous run\n") || !strings.Contains(got, "=== meteor-fighter started ===") {
		t.Errorf("log = %q, want previous run kept and banner appended", got)
	}
}

// chdir switches to dir for the duration of the test (stand-in for testing.T.Chdir, which needs Go 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
