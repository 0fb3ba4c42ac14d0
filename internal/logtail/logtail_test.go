package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || lines != nil {
		t.Fatalf("Read() = %v, %v; want nil, nil", lines, err)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "not json at all",
			expected: "not json at all",
		},
		{
			name:     "broken json",
			input:    `{"level":`,
			expected: `{"level":`,
		},
		{
			name:     "zap entry",
			input:    `{"level":"info","ts":"2026-01-02T10:00:00.000Z","caller":"app/app.go:42","msg":"cookbook refreshed","recipes":12,"backend":"local"}`,
			expected: "2026-01-02T10:00:00.000Z INFO cookbook refreshed backend=local recipes=12",
		},
		{
			name:     "nested field",
			input:    `{"level":"error","msg":"save failed","error":"boom","tags":["a","b"]}`,
			expected: `ERROR save failed error=boom tags=["a","b"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParse_Level(t *testing.T) {
	entry, ok := Parse(`{"level":"warn","msg":"slow"}`)
	if !ok {
		t.Fatalf("Parse() ok = false")
	}
	if entry.Level != "WARN" || entry.Message != "slow" || len(entry.Fields) != 0 {
		t.Fatalf("Parse() = %#v", entry)
	}
}
