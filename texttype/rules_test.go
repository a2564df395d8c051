package texttype

import (
	"regexp"
	"testing"
)

func TestBuiltinRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule  string
		input string
		want  string
	}{
		{TypeInt, "", ""},
		{TypeInt, "abc", ""},
		{TypeInt, "abc-045xyz", "-45"},
		{TypeInt, "12.5", "125"},
		{TypeInt, "-0123", "-123"},
		{TypeInt, "-000", "-0"},
		{TypeInt, "0", "0"},
		{TypeInt, "007", "7"},
		{TypeInt, "x0y0", "0"},
		{TypeInt, "+", "+"},
		{TypeInt, "-", "-"},
		{TypeInt, "12-3", "123"},
		{TypeInt, "--5", "-5"},
		{TypeInt, "a+b1c2", "+12"},

		{TypeUint, "", ""},
		{TypeUint, "00123", "123"},
		{TypeUint, "abc", ""},
		{TypeUint, "0", ""},
		{TypeUint, "-12", "12"},
		{TypeUint, "1a0b2", "102"},

		{TypeFloat, "", ""},
		{TypeFloat, "12.5.6", "12.56"},
		{TypeFloat, "-3.14", "-3.14"},
		{TypeFloat, "1.2.3.4", "1.234"},
		{TypeFloat, ".", "."},
		{TypeFloat, "abc.5", ".5"},
		{TypeFloat, "00.50", "0.50"},
		{TypeFloat, "12", "12"},
		{TypeFloat, "x", ""},

		{TypeDigit, "", ""},
		{TypeDigit, "a1b2c3", "123"},
		{TypeDigit, "007", "007"},
		{TypeDigit, "-1.5", "15"},

		{TypeAlpha, "", ""},
		{TypeAlpha, "12et5yh8", "etyh"},
		{TypeAlpha, "héllo", "hllo"},
		{TypeAlpha, "A_b-C", "AbC"},

		{TypeVarname, "", ""},
		{TypeVarname, "123abc", "abc"},
		{TypeVarname, "_abc123", "_abc123"},
		{TypeVarname, "a1-2b", "a1b"},
		{TypeVarname, "my var!", "myvar"},
		{TypeVarname, "9_x", "_x"},
		{TypeVarname, "42", ""},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := reg.Filter(tt.rule, tt.input)
			if err != nil {
				t.Fatalf("Filter(%q, %q) unexpected error: %v", tt.rule, tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Filter(%q, %q) = %q, want %q", tt.rule, tt.input, got, tt.want)
			}
		})
	}
}

func TestBuiltinRulesIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "0", "000", "-", "+", ".", "..", "-0123", "abc-045xyz", "12.5.6",
		"-3.14", "+.5", "a1b2c3", "12et5yh8", "123abc", "_abc123", "9_x",
		"  -00.0.0 ", "héllo wörld 42", "+-+12--34", "x.y.z", "__init__",
	}

	reg := NewRegistry()
	for _, name := range Builtins() {
		rule, err := reg.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) unexpected error: %v", name, err)
		}
		for _, in := range inputs {
			once := rule(in)
			if twice := rule(once); twice != once {
				t.Errorf("%s: rule(rule(%q)) = %q, want %q", name, in, twice, once)
			}
		}
	}
}

func TestMatchRule(t *testing.T) {
	t.Parallel()

	hex := MatchRule(regexp.MustCompile(`[0-9a-fA-F]+`))

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"0xFF", "0FF"},
		{"de:ad:be:ef", "deadbeef"},
		{"xyz", ""},
	}

	for _, tt := range tests {
		if got := hex(tt.input); got != tt.want {
			t.Errorf("hex(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsBuiltin(t *testing.T) {
	t.Parallel()

	for _, name := range Builtins() {
		if !IsBuiltin(name) {
			t.Errorf("IsBuiltin(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "hex", "INT", "number"} {
		if IsBuiltin(name) {
			t.Errorf("IsBuiltin(%q) = true, want false", name)
		}
	}
}
