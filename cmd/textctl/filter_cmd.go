package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/textctl/internal/log"
	"github.com/raphi011/textctl/internal/output"
	"github.com/raphi011/textctl/texttype"
)

// filterResult is one filtered input, as printed by --json.
type filterResult struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
}

func newFilterCmd() *cobra.Command {
	var (
		maxLength       int
		jsonOutput      bool
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:               "filter <type> [text...]",
		Short:             "Strip text down to a content type",
		GroupID:           GroupFilter,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeTypes,
		Long: `Strip text down to what a content type allows.

Each text argument is filtered and printed on its own line. Without text
arguments, every line read from stdin is filtered.

The length limit comes from --max-length, then the type's max_length in the
config, then the global max_length. 0 disables it.

Text starting with "-" (a signed number) must follow "--", otherwise it is
read as flags.`,
		Example: `  textctl filter int "abc-045xyz"     # -45
  textctl filter int -- -045            # -45
  textctl filter alpha 12et5yh8         # etyh
  textctl filter digit -n 4 a1b2c3d4e5  # 1234
  cat ids.txt | textctl filter varname  # one result per line
  textctl filter float --copy "12.5.6"  # copy 12.56 to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			typeName := args[0]
			inputs, err := readInputs(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}

			limit := resolveMaxLength(cmd, maxLength, cfg, typeName)
			l.Debug("filter", "type", typeName, "max_length", limit, "inputs", len(inputs))

			results, err := filterAll(newHandler(ctx, typeName, limit), inputs)
			if err != nil {
				return err
			}

			if copyToClipboard {
				outputs := make([]string, len(results))
				for i, r := range results {
					outputs[i] = r.Output
				}
				if err := clipboard.WriteAll(strings.Join(outputs, "\n")); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			if jsonOutput {
				return out.JSON(results)
			}
			for _, r := range results {
				out.Println(r.Output)
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(signedNumberHint)

	cmd.Flags().IntVarP(&maxLength, "max-length", "n", 0, "Truncate results to this many characters (0 = no limit)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy results to clipboard")

	return cmd
}

// filterAll runs every input through h in value mode.
func filterAll(h *texttype.Handler, inputs []string) ([]filterResult, error) {
	results := make([]filterResult, 0, len(inputs))
	for _, in := range inputs {
		v, err := h.Handle(texttype.ValueInput(in))
		if err != nil {
			return nil, err
		}
		filtered, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("filter %q: unexpected result %T", h.Type(), v)
		}
		results = append(results, filterResult{Input: in, Output: filtered, Changed: filtered != in})
	}
	return results, nil
}
