package ui

import (
	"testing"

	"github.com/five82/foodie/internal/cookbook"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestEveryThemeColorsEveryLabel(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, label := range cookbook.Labels {
			if th.LabelColors[label] == "" {
				t.Fatalf("theme %s has no color for label %q", name, label)
			}
			if got := th.LabelColor(" " + label + " "); got != th.LabelColors[label] {
				t.Fatalf("LabelColor(%q) = %q, want %q", label, got, th.LabelColors[label])
			}
		}
		if got := th.LabelColor("snacks"); got != th.Muted {
			t.Fatalf("LabelColor(unknown) = %q, want Muted %q", got, th.Muted)
		}
	}
}
