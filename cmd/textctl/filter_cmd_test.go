package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/raphi011/textctl/internal/config"
	"github.com/raphi011/textctl/texttype"
)

func TestFilterCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "int", args: []string{"int", "abc-045xyz"}, want: "-45\n"},
		{name: "uint", args: []string{"uint", "x-007"}, want: "7\n"},
		{name: "float", args: []string{"float", "12.5.6"}, want: "12.56\n"},
		{name: "alpha", args: []string{"alpha", "12et5yh8"}, want: "etyh\n"},
		{name: "varname", args: []string{"varname", "123abc"}, want: "abc\n"},
		{name: "several args", args: []string{"digit", "a1", "b2c3"}, want: "1\n23\n"},
		{name: "stdin lines", stdin: "a1\nb2c3\n", args: []string{"digit"}, want: "1\n23\n"},
		{name: "max length flag", args: []string{"digit", "-n", "4", "a1b2c3d4e5"}, want: "1234\n"},
		{name: "nothing left", args: []string{"digit", "abc"}, want: "\n"},
		{name: "signed int after dashes", args: []string{"int", "--", "-45"}, want: "-45\n"},
		{name: "signed float after dashes", args: []string{"float", "--", "-3.14"}, want: "-3.14\n"},
		{name: "flags before dashes", args: []string{"int", "-n", "2", "--", "-045"}, want: "-4\n"},
		{name: "signed stdin line", stdin: "-045\n", args: []string{"int"}, want: "-45\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, _, buf := testContext(t, nil)
			if err := runCmd(t, ctx, newFilterCmd(), tt.stdin, tt.args...); err != nil {
				t.Fatalf("filter failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFilterCmd_ConfigMaxLength tests length limits from config.
//
// Scenario: config sets a global and a per-type max_length
// Expected: the per-type limit wins, an explicit -n 0 disables both
func TestFilterCmd_ConfigMaxLength(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		MaxLength: 3,
		Types: map[string]config.TypeDef{
			"hex": {Pattern: "[0-9a-f]+", MaxLength: 5},
		},
		TypeOrder: []string{"hex"},
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "global limit", args: []string{"digit", "1234567"}, want: "123\n"},
		{name: "type limit", args: []string{"hex", "ff-ee-dd-cc"}, want: "ffeed\n"},
		{name: "flag disables limit", args: []string{"digit", "-n", "0", "1234567"}, want: "1234567\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, _, buf := testContext(t, cfg)
			if err := runCmd(t, ctx, newFilterCmd(), "", tt.args...); err != nil {
				t.Fatalf("filter failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterCmd_JSON(t *testing.T) {
	t.Parallel()

	ctx, _, buf := testContext(t, nil)
	if err := runCmd(t, ctx, newFilterCmd(), "", "int", "--json", "0042", "17"); err != nil {
		t.Fatalf("filter --json failed: %v", err)
	}

	var got []filterResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	want := []filterResult{
		{Input: "0042", Output: "42", Changed: true},
		{Input: "17", Output: "17", Changed: false},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestFilterCmd_UnknownType tests filtering with an unregistered type.
//
// Scenario: User runs `textctl filter flaot 1.5`
// Expected: ErrUnknownType, nothing printed
func TestFilterCmd_UnknownType(t *testing.T) {
	t.Parallel()

	ctx, _, buf := testContext(t, nil)
	err := runCmd(t, ctx, newFilterCmd(), "", "flaot", "1.5")
	if !errors.Is(err, texttype.ErrUnknownType) {
		t.Fatalf("error = %v, want ErrUnknownType", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestFilterCmd_NoInput(t *testing.T) {
	t.Parallel()

	ctx, _, _ := testContext(t, nil)
	if err := runCmd(t, ctx, newFilterCmd(), "", "int"); !errors.Is(err, errNoInput) {
		t.Fatalf("error = %v, want errNoInput", err)
	}
}

// TestFilterCmd_RuntimeType tests that types registered after the handler
// is configured are still found.
//
// Scenario: a type is registered on the registry in the context
// Expected: filter resolves it by name
func TestFilterCmd_RuntimeType(t *testing.T) {
	t.Parallel()

	ctx, reg, buf := testContext(t, nil)
	reg.Register("upper-alpha", func(s string) string {
		var out []rune
		for _, r := range s {
			if r >= 'A' && r <= 'Z' {
				out = append(out, r)
			}
		}
		return string(out)
	})

	if err := runCmd(t, ctx, newFilterCmd(), "", "upper-alpha", "aBcD1"); err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if got, want := buf.String(), "BD\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestFilterCmd_SignedNumberHint tests the error for an unescaped signed number.
//
// Scenario: User runs `textctl filter int -45`
// Expected: the flag error points at "--", nothing printed
func TestFilterCmd_SignedNumberHint(t *testing.T) {
	t.Parallel()

	ctx, _, buf := testContext(t, nil)
	err := runCmd(t, ctx, newFilterCmd(), "", "int", "-45")
	if err == nil {
		t.Fatal("expected flag error for -45")
	}
	if !strings.Contains(err.Error(), "int -- -45") {
		t.Errorf("error = %q, want a hint about --", err.Error())
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestSignedNumberHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{"negative integer", errors.New("unknown shorthand flag: '4' in -45"), true},
		{"negative fraction", errors.New("unknown shorthand flag: '.' in -.5"), true},
		{"unknown letter flag", errors.New("unknown shorthand flag: 'x' in -x"), false},
		{"unknown long flag", errors.New("unknown flag: --colour"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := signedNumberHint(newFilterCmd(), tt.err)
			if !errors.Is(got, tt.err) {
				t.Errorf("signedNumberHint() = %v, want it to wrap %v", got, tt.err)
			}
			if hasHint := strings.Contains(got.Error(), "after --"); hasHint != tt.wantHint {
				t.Errorf("signedNumberHint() = %q, hint = %v, want %v", got.Error(), hasHint, tt.wantHint)
			}
		})
	}
}
