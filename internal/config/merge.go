package config

import (
	"maps"
	"slices"
)

// MergeLocal merges a local config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	if local.MaxLength != nil {
		merged.MaxLength = *local.MaxLength
	}

	// Types merge by name: local replaces or adds, new names go last
	merged.Types = make(map[string]TypeDef, len(global.Types)+len(local.Types))
	maps.Copy(merged.Types, global.Types)
	maps.Copy(merged.Types, local.Types)
	merged.TypeOrder = appendUnique(global.TypeOrder, local.TypeOrder)

	return &merged
}

// appendUnique appends items from extra to base, skipping duplicates.
// Returns a new slice (never mutates base).
func appendUnique(base, extra []string) []string {
	result := slices.Clone(base)
	for _, v := range extra {
		if !slices.Contains(result, v) {
			result = append(result, v)
		}
	}
	return result
}
