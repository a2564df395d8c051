// Package config handles loading and validation of textctl configuration.
//
// Configuration is read from ~/.config/textctl/config.toml, or from the file
// named by the TEXTCTL_CONFIG environment variable. A .textctl.toml in the
// working directory is merged on top (see [MergeLocal]).
//
// # Key Settings
//
//   - max_length: default length limit for filter and check (0 = none)
//
// # Custom Types
//
// Custom text types are declared in [types.NAME] sections and registered
// after the built-ins, in file order:
//
//	[types.hex]
//	pattern = "[0-9a-fA-F]+"   # keep every match, drop everything else
//	description = "Hexadecimal digits"
//	max_length = 16
//
//	[types.amount]
//	base = "float"             # alias of an existing type
//
// Exactly one of pattern or base must be set. A custom type may only reuse
// a built-in name when override = true.
//
// # Theme
//
//	[theme]
//	name = "nord"   # default, none, dracula, nord
//	mode = "auto"   # auto, light, dark
package config
