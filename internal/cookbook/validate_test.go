package cookbook

import "testing"

func TestValidateText(t *testing.T) {
	valid := []string{"", "Bløtkake", "Æble 2", "Kake med\tbær"}
	for _, s := range valid {
		if err := ValidateText(s); err != nil {
			t.Fatalf("ValidateText(%q) = %v, want nil", s, err)
		}
	}
	invalid := []string{"kake!", "a-b", "100%"}
	for _, s := range invalid {
		err := ValidateText(s)
		if err == nil {
			t.Fatalf("ValidateText(%q) = nil, want error", s)
		}
		if err.Error() != MsgLettersOrNumbers {
			t.Fatalf("ValidateText(%q) message = %q, want %q", s, err.Error(), MsgLettersOrNumbers)
		}
	}
}

func TestParsePortions(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{" 4 ", 4, false},
		{"4.5", 0, true},
		{"fire", 0, true},
		{"-1", 0, true},
	}
	for _, tc := range cases {
		got, err := ParsePortions(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("ParsePortions(%q) = %d, %v; want %d, wantErr %v", tc.in, got, err, tc.want, tc.wantErr)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"200", 200, false},
		{"1.5", 1.5, false},
		{"1,5", 1.5, false},
		{"mye", 0, true},
		{"NaN", 0, true},
		{"inf", 0, true},
		{"-Infinity", 0, true},
		{"1e400", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, %v; want %v, wantErr %v", tc.in, got, err, tc.want, tc.wantErr)
		}
		if err != nil && !IsValidation(err) {
			t.Fatalf("ParseAmount(%q) error is not a ValidationError", tc.in)
		}
	}
}
