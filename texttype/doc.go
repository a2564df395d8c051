// Package texttype filters text down to what a declared content type allows.
//
// A content type is a named [Rule], a pure string-to-string function. Six rules
// are built in and registered in this order:
//
//	int      signed integer literal, e.g. "abc-045xyz" -> "-45"
//	uint     unsigned integer without leading zeros, e.g. "00123" -> "123"
//	float    int part, then the first "." and the remaining digits
//	digit    digits only, leading zeros kept
//	alpha    ASCII letters only
//	varname  identifier runs ([_a-zA-Z][_a-zA-Z0-9]*) joined together
//
// Further types can be added at any time with [Register] (or
// [Registry.Register] on a private registry). Registration is caller-trusted:
// the rule is not validated.
//
// # Handlers
//
// [New] builds a [Handler] for a type name. Each call resolves the rule
// again, so a type registered after the handler was built is still found, and
// an unknown name only fails when the handler runs ([ErrUnknownType]).
//
// A handler is invoked with one of two inputs:
//
//   - [HostInput] wraps a [Host] exposing mutable text, such as an input field.
//     The filtered text is written back when it differs, and the optional
//     [AfterCheck] callback receives the host.
//   - [ValueInput] wraps a plain string. Nothing is mutated; the callback
//     receives the filtered string.
//
// Without a callback both modes return the filtered text. With one, they
// return whatever the callback returns. [Conforms] is a ready-made callback
// reporting whether the input already satisfied the type.
package texttype
