package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-directory config file merged over the
// global config.
const LocalConfigFileName = ".textctl.toml"

// LocalConfig holds per-directory overrides from .textctl.toml.
// Pointer fields indicate "not set" (inherit from global).
type LocalConfig struct {
	MaxLength *int               `toml:"max_length"`
	Types     map[string]TypeDef `toml:"types"`

	TypeOrder []string `toml:"-"`
}

// LoadLocal reads .textctl.toml from dir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	local := &LocalConfig{}
	md, err := toml.Decode(string(data), local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	local.TypeOrder = typeOrder(md, local.Types)

	if local.MaxLength != nil && *local.MaxLength < 0 {
		return nil, fmt.Errorf("invalid max_length %d in %s: must not be negative", *local.MaxLength, configFile)
	}

	return local, nil
}

const defaultLocalConfig = `# textctl local configuration
# Merged over the global config when textctl runs in this directory.

# max_length = 32

# [types.ticket]
# pattern = "[A-Z]+-[0-9]+"
# description = "Issue key"
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
