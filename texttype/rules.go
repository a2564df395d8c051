package texttype

import (
	"regexp"
	"strings"
)

// Rule transforms raw text into text conforming to a content type.
// Rules must accept any string and never fail.
type Rule func(string) string

// Built-in type names, in registration order.
const (
	TypeInt     = "int"
	TypeUint    = "uint"
	TypeFloat   = "float"
	TypeDigit   = "digit"
	TypeAlpha   = "alpha"
	TypeVarname = "varname"
)

var (
	digitRe   = regexp.MustCompile(`[0-9]+`)
	alphaRe   = regexp.MustCompile(`[a-zA-Z]+`)
	varnameRe = regexp.MustCompile(`[_a-zA-Z][_a-zA-Z0-9]*`)
)

// MatchRule returns a Rule keeping the concatenation of every non-overlapping
// match of re, in order. Everything between matches is dropped.
func MatchRule(re *regexp.Regexp) Rule {
	return func(s string) string {
		return strings.Join(re.FindAllString(s, -1), "")
	}
}

// Int keeps a signed integer literal: an optional sign taken from the first
// sign-or-digit character, followed by every later digit with leading zeros
// collapsed. A sign with no digits is kept on its own.
func Int(s string) string {
	idx := strings.IndexAny(s, "+-0123456789")
	if idx < 0 {
		return ""
	}

	digits := Digit(s[idx:])
	n := strings.TrimLeft(digits, "0")
	if n == "" && digits != "" {
		n = "0"
	}

	if c := s[idx]; c == '+' || c == '-' {
		return string(c) + n
	}
	return n
}

// Uint keeps the digits with every leading zero removed. A run of zeros
// yields the empty string.
func Uint(s string) string {
	return strings.TrimLeft(Digit(s), "0")
}

// Float applies Int to the text before the first "." and, when a "." is
// present, appends it followed by the digits of everything after it. Later
// dots are dropped like any other non-digit.
func Float(s string) string {
	intPart, fracPart, found := strings.Cut(s, ".")
	out := Int(intPart)
	if found {
		out += "." + Digit(fracPart)
	}
	return out
}

// Digit keeps every ASCII digit.
func Digit(s string) string {
	return MatchRule(digitRe)(s)
}

// Alpha keeps every ASCII letter.
func Alpha(s string) string {
	return MatchRule(alphaRe)(s)
}

// Varname keeps every identifier-like run. A run starts with an underscore or
// ASCII letter; digits only survive when they extend a run.
func Varname(s string) string {
	return MatchRule(varnameRe)(s)
}

func registerBuiltins(r *Registry) {
	r.Register(TypeInt, Int)
	r.Register(TypeUint, Uint)
	r.Register(TypeFloat, Float)
	r.Register(TypeDigit, Digit)
	r.Register(TypeAlpha, Alpha)
	r.Register(TypeVarname, Varname)
}

// Builtins returns the names of the built-in types in registration order.
func Builtins() []string {
	return []string{TypeInt, TypeUint, TypeFloat, TypeDigit, TypeAlpha, TypeVarname}
}

// IsBuiltin reports whether name is one of the built-in types.
func IsBuiltin(name string) bool {
	switch name {
	case TypeInt, TypeUint, TypeFloat, TypeDigit, TypeAlpha, TypeVarname:
		return true
	}
	return false
}
