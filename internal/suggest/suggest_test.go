package suggest

import (
	"slices"
	"testing"
)

var builtins = []string{"int", "uint", "float", "digit", "alpha", "varname"}

func TestNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantNone  bool
	}{
		{name: "abbreviation", input: "vn", wantFirst: "varname"},
		{name: "exact", input: "alpha", wantFirst: "alpha"},
		{name: "transposed letters", input: "flaot", wantFirst: "float"},
		{name: "no match", input: "zzz", wantNone: true},
		{name: "empty", input: "", wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Names(tt.input, builtins)
			if tt.wantNone {
				if len(got) != 0 {
					t.Errorf("Names(%q) = %v, want none", tt.input, got)
				}
				return
			}
			if len(got) == 0 || got[0] != tt.wantFirst {
				t.Errorf("Names(%q) = %v, want first %q", tt.input, got, tt.wantFirst)
			}
		})
	}
}

func TestNames_Capped(t *testing.T) {
	t.Parallel()

	got := Names("t", builtins)
	if len(got) > maxSuggestions {
		t.Errorf("Names returned %d names, want at most %d", len(got), maxSuggestions)
	}
	for _, n := range got {
		if !slices.Contains(builtins, n) {
			t.Errorf("Names returned unknown candidate %q", n)
		}
	}
}

func TestHint(t *testing.T) {
	t.Parallel()

	if got := Hint("zzz", builtins); got != "" {
		t.Errorf("Hint(zzz) = %q, want empty", got)
	}
	if got := Hint("alpha", builtins); got != `did you mean "alpha"?` {
		t.Errorf("Hint(alpha) = %q", got)
	}
}
