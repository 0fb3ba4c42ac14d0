package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/foodie/internal/access"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestListDemoJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "list", "--demo", "--label", "dessert", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got access.RecipeList
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	var names []string
	for _, r := range got.Recipes {
		names = append(names, r.Name)
	}
	if diff := cmp.Diff([]string{"Bløtkake"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestListDemoFavoritesTable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "list", "--demo", "--favorites")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"Name", "Pannekaker", "Bløtkake"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Kjøttkaker") {
		t.Fatalf("table lists a non-favorite:\n%s", out)
	}
}

func TestListRejectsUnknownLabel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := execute(t, "list", "--demo", "--label", "brunch"); err == nil {
		t.Fatalf("list --label brunch succeeded, want error")
	}
}

func TestListLocalEmpty(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "data_path = \""+filepath.Join(dir, "cookbook.db")+"\"\n")

	out, err := execute(t, "--config", cfg, "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, `"recipes": []`) {
		t.Fatalf("output = %q, want an empty list", out)
	}
}

func TestLogsFormatsEntries(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "log_dir = \""+dir+"\"\n")
	lines := strings.Join([]string{
		`{"level":"info","ts":"2026-03-01T10:00:00.000Z","msg":"foodie starting","backend":"local"}`,
		`{"level":"warn","ts":"2026-03-01T10:00:05.000Z","msg":"cookbook poll failed","consecutive_failures":1}`,
	}, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, "foodie.log"), []byte(lines), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	out, err := execute(t, "--config", cfg, "logs", "-n", "1")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if strings.Contains(out, "foodie starting") || !strings.Contains(out, "cookbook poll failed") {
		t.Fatalf("logs -n 1 output = %q", out)
	}
	if strings.Contains(out, "{") {
		t.Fatalf("logs output not formatted: %q", out)
	}

	raw, err := execute(t, "--config", cfg, "logs", "--raw", "-n", "0")
	if err != nil {
		t.Fatalf("logs --raw: %v", err)
	}
	if strings.Count(raw, "{") != 2 {
		t.Fatalf("logs --raw output = %q, want both JSON lines", raw)
	}
}

func TestLogsMissingFile(t *testing.T) {
	cfg := writeConfig(t, "log_dir = \""+t.TempDir()+"\"\n")
	out, err := execute(t, "--config", cfg, "logs")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if !strings.Contains(out, "No log entries") {
		t.Fatalf("output = %q", out)
	}
}

func TestServeRefusesRemoteBackend(t *testing.T) {
	cfg := writeConfig(t, "backend = \"remote\"\n")
	if _, err := execute(t, "--config", cfg, "serve"); err == nil {
		t.Fatalf("serve with a remote backend succeeded, want error")
	}
}
