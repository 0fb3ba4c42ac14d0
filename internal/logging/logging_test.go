package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/foodie/internal/logtail"
)

func readEntries(t *testing.T, path string) []logtail.Entry {
	t.Helper()
	lines, err := logtail.Read(path, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	var entries []logtail.Entry
	for _, line := range lines {
		entry, ok := logtail.Parse(line)
		if !ok {
			t.Fatalf("line is not JSON: %q", line)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "foodie.log")

	logger, err := New(Options{Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("cookbook refreshed")
	_ = logger.Sync()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (debug filtered)", len(entries))
	}
	if entries[0].Level != "INFO" || entries[0].Message != "cookbook refreshed" {
		t.Fatalf("entry = %#v", entries[0])
	}
	if !strings.Contains(entries[0].Time, "T") {
		t.Fatalf("time %q is not ISO8601", entries[0].Time)
	}
}

func TestNew_VerboseKeepsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodie.log")

	logger, err := New(Options{Path: path, Verbose: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("poll tick")
	_ = logger.Sync()

	entries := readEntries(t, path)
	if len(entries) != 1 || entries[0].Level != "DEBUG" {
		t.Fatalf("entries = %#v, want one DEBUG entry", entries)
	}
}
