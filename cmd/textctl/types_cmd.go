package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/textctl/internal/config"
	"github.com/raphi011/textctl/internal/output"
	"github.com/raphi011/textctl/internal/ui/static"
	"github.com/raphi011/textctl/texttype"
)

// builtinDescriptions documents the built-in types for "textctl types".
var builtinDescriptions = map[string]string{
	texttype.TypeInt:     "Signed integer, leading zeros collapsed",
	texttype.TypeUint:    "Unsigned integer without leading zeros",
	texttype.TypeFloat:   "Integer part, first dot, then digits",
	texttype.TypeDigit:   "Digits only",
	texttype.TypeAlpha:   "ASCII letters only",
	texttype.TypeVarname: "Identifier runs ([_a-zA-Z][_a-zA-Z0-9]*)",
}

// typeInfo describes one registered type, as printed by --json.
type typeInfo struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	MaxLength   int    `json:"max_length,omitempty"`
	Description string `json:"description,omitempty"`
}

func newTypesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "types",
		Short:   "List available content types",
		Aliases: []string{"ls"},
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `List available content types in registration order.

Built-in types come first, followed by custom types from the config in
the order they are declared.`,
		Example: `  textctl types         # table of types
  textctl types --json  # machine-readable listing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			infos := listTypes(registryFromContext(ctx), configFromContext(ctx))
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(infos)
			}

			rows := make([][]string, len(infos))
			for i, info := range infos {
				rows[i] = static.TypeTableRow(info.Name, info.Source, info.MaxLength, info.Description)
			}
			out.Print(static.RenderTable(static.TypeHeaders, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// listTypes annotates the registry listing with config details. A type is
// "config" when declared there, "builtin" when built in and not
// overridden, and "runtime" otherwise.
func listTypes(reg *texttype.Registry, cfg *config.Config) []typeInfo {
	names := reg.Types()
	infos := make([]typeInfo, 0, len(names))
	for _, name := range names {
		info := typeInfo{Name: name, MaxLength: cfg.MaxLengthFor(name)}
		if def, ok := cfg.Types[name]; ok {
			info.Source = "config"
			info.Description = def.Description
		} else if texttype.IsBuiltin(name) {
			info.Source = "builtin"
			info.Description = builtinDescriptions[name]
		} else {
			info.Source = "runtime"
		}
		infos = append(infos, info)
	}
	return infos
}
