package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"Kjøttkaker", 20, "Kjøttkaker"},
		{"Kjøttkaker med brun saus", 10, "Kjøttka..."},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
		{"  padded  ", 10, "padded"},
	}
	for _, tc := range cases {
		got := truncate(tc.in, tc.limit)
		if got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
		if len([]rune(tc.in)) > tc.limit && len([]rune(got)) != tc.limit {
			t.Fatalf("truncate(%q, %d) = %q (%d runes), want exactly %d", tc.in, tc.limit, got, len([]rune(got)), tc.limit)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	got := truncateMiddle("/home/kari/.local/share/foodie/cookbook.db", 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("truncateMiddle = %q (%d runes), want 20", got, len([]rune(got)))
	}
	if got[len(got)-len("cookbook.db"):] != "cookbook.db" {
		t.Fatalf("truncateMiddle = %q, want the file name kept", got)
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("breakfast"); got != "Breakfast" {
		t.Fatalf("titleCase = %q", got)
	}
	if got := titleCase("ærlig talt"); got != "Ærlig Talt" {
		t.Fatalf("titleCase = %q", got)
	}
	if got := titleCase("  "); got != "" {
		t.Fatalf("titleCase blank = %q", got)
	}
}

func TestFormatAmountAndPortions(t *testing.T) {
	if got := formatAmount(2.5); got != "2.5" {
		t.Fatalf("formatAmount(2.5) = %q", got)
	}
	if got := formatAmount(200); got != "200" {
		t.Fatalf("formatAmount(200) = %q", got)
	}
	if got := formatPortions(0); got != "-" {
		t.Fatalf("formatPortions(0) = %q", got)
	}
	if got := formatPortions(4); got != "4" {
		t.Fatalf("formatPortions(4) = %q", got)
	}
}
