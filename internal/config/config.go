package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/textctl/texttype"
)

// EnvConfigPath overrides the global config file location.
const EnvConfigPath = "TEXTCTL_CONFIG"

// TypeDef declares a custom text type.
type TypeDef struct {
	Pattern     string `toml:"pattern,omitempty" json:"pattern,omitempty"`         // regexp; matches are kept
	Base        string `toml:"base,omitempty" json:"base,omitempty"`               // alias of another type
	Description string `toml:"description,omitempty" json:"description,omitempty"` // shown by "textctl types"
	MaxLength   int    `toml:"max_length,omitempty" json:"max_length,omitempty"`   // per-type default limit
	Override    bool   `toml:"override,omitempty" json:"override,omitempty"`       // allow shadowing a built-in
}

// ThemeConfig selects the color theme
type ThemeConfig struct {
	Name string `toml:"name" json:"name,omitempty"`
	Mode string `toml:"mode" json:"mode,omitempty"` // "auto", "light" or "dark"
}

// Config holds the textctl configuration
type Config struct {
	MaxLength int                `toml:"max_length" json:"max_length"`
	Types     map[string]TypeDef `toml:"types" json:"types,omitempty"`
	Theme     ThemeConfig        `toml:"theme" json:"theme"`

	// TypeOrder lists the keys of Types in declaration order.
	TypeOrder []string `toml:"-" json:"-"`
	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-" json:"path,omitempty"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Types: map[string]TypeDef{},
		Theme: ThemeConfig{Name: "default", Mode: "auto"},
	}
}

// MaxLengthFor returns the length limit for a type: the type's own
// max_length if set, otherwise the global max_length.
func (c *Config) MaxLengthFor(name string) int {
	if def, ok := c.Types[name]; ok && def.MaxLength > 0 {
		return def.MaxLength
	}
	return c.MaxLength
}

// Path returns the global config file path.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "textctl", "config.toml"), nil
}

// Load reads the global config.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path. A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	// Use defaults for empty values
	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "default"
	}
	if cfg.Theme.Mode == "" {
		cfg.Theme.Mode = "auto"
	}

	return cfg, nil
}

// parse decodes TOML and records the declaration order of [types.NAME].
func parse(data []byte) (Config, error) {
	cfg := Config{Types: map[string]TypeDef{}}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, err
	}
	if cfg.Types == nil {
		cfg.Types = map[string]TypeDef{}
	}
	cfg.TypeOrder = typeOrder(md, cfg.Types)
	return cfg, nil
}

// typeOrder extracts type names in file order from decoded keys.
func typeOrder(md toml.MetaData, types map[string]TypeDef) []string {
	var order []string
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "types" && !slices.Contains(order, key[1]) {
			order = append(order, key[1])
		}
	}
	// Inline tables such as types = { a = {...} } don't show up as keys.
	for name := range types {
		if !slices.Contains(order, name) {
			order = append(order, name)
		}
	}
	return order
}

// Register installs the configured custom types into reg in declaration
// order. Aliases resolve against reg at registration time.
func Register(reg *texttype.Registry, cfg *Config) error {
	for _, name := range cfg.TypeOrder {
		def := cfg.Types[name]
		switch {
		case def.Pattern != "":
			re, err := regexp.Compile(def.Pattern)
			if err != nil {
				return fmt.Errorf("type %q: invalid pattern: %w", name, err)
			}
			reg.Register(name, texttype.MatchRule(re))
		case def.Base != "":
			rule, err := reg.Lookup(def.Base)
			if err != nil {
				return fmt.Errorf("type %q: base: %w", name, err)
			}
			reg.Register(name, rule)
		}
	}
	return nil
}

const defaultConfig = `# textctl configuration

# Default length limit for "textctl filter" and "textctl check".
# 0 means no limit. Overridden per type and by --max-length.
max_length = 0

# Custom types - registered after the built-ins
# (int, uint, float, digit, alpha, varname), in the order declared here.
#
# A type either keeps every match of a regular expression:
#
# [types.hex]
# pattern = "[0-9a-fA-F]+"
# description = "Hexadecimal digits"
# max_length = 16
#
# or aliases an existing type:
#
# [types.amount]
# base = "float"
# description = "Money amount"
#
# Set override = true to replace a built-in type of the same name.

[theme]
# Available: "default", "none", "dracula", "nord"
name = "default"
# "auto" detects the terminal background; "light" or "dark" force a variant
mode = "auto"
`

// DefaultConfig returns the default configuration file content.
func DefaultConfig() string {
	return defaultConfig
}
