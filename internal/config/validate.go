package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/raphi011/textctl/texttype"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"default", "none", "dracula", "nord"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// Validate checks lengths, theme settings and custom type declarations.
func (c *Config) Validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("invalid max_length %d: must not be negative", c.MaxLength)
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	return validateTypes(c.Types, c.TypeOrder)
}

// validateTypes checks each type in declaration order. A base must name a
// built-in or a type declared earlier.
func validateTypes(types map[string]TypeDef, order []string) error {
	known := texttype.Builtins()
	for _, name := range order {
		def := types[name]
		field := "types." + name

		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid type name %q: must not be blank", name)
		}
		if texttype.IsBuiltin(name) && !def.Override {
			return fmt.Errorf("%s shadows a built-in type (set override = true to replace it)", field)
		}
		if def.MaxLength < 0 {
			return fmt.Errorf("invalid %s.max_length %d: must not be negative", field, def.MaxLength)
		}

		switch {
		case def.Pattern != "" && def.Base != "":
			return fmt.Errorf("%s: pattern and base are mutually exclusive", field)
		case def.Pattern != "":
			if _, err := regexp.Compile(def.Pattern); err != nil {
				return fmt.Errorf("invalid %s.pattern %q: %w", field, def.Pattern, err)
			}
		case def.Base != "":
			if def.Base == name {
				return fmt.Errorf("%s: base must not refer to itself", field)
			}
			if !slices.Contains(known, def.Base) {
				return fmt.Errorf("invalid %s.base %q: must be %s", field, def.Base, formatOptions(known))
			}
		default:
			return fmt.Errorf("%s: one of pattern or base is required", field)
		}

		if !slices.Contains(known, name) {
			known = append(known, name)
		}
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
