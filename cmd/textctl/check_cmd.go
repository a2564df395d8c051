package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/textctl/internal/log"
	"github.com/raphi011/textctl/internal/output"
	"github.com/raphi011/textctl/internal/ui/static"
	"github.com/raphi011/textctl/texttype"
)

// errNonConforming marks a check that ran fine but found failing input.
var errNonConforming = errors.New("do not conform")

// checkResult is one validated input, as printed by --json.
type checkResult struct {
	Input    string `json:"input"`
	Filtered string `json:"filtered"`
	OK       bool   `json:"ok"`
}

func newCheckCmd() *cobra.Command {
	var (
		maxLength  int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:               "check <type> [text...]",
		Short:             "Check whether text already conforms to a content type",
		GroupID:           GroupFilter,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeTypes,
		Long: `Check whether text already conforms to a content type.

Text conforms when filtering it (including the length limit) changes
nothing. Inputs come from arguments or stdin lines, as with filter. Signed numbers go after "--".

Exits with status 1 when any input does not conform.`,
		Example: `  textctl check digit 3445678           # ✓
  textctl check varname 123abc _abc123  # ✗ then ✓
  textctl check uint --json 007
  textctl check int -- -45              # ✓`,
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
			l.Debug("check", "type", typeName, "max_length", limit, "inputs", len(inputs))

			h := newHandler(ctx, typeName, limit, texttype.WithAfterCheck(texttype.Conforms))
			results, err := checkAll(h, inputs)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := out.JSON(results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, len(results))
				for i, r := range results {
					rows[i] = static.CheckTableRow(r.Input, r.Filtered, r.OK)
				}
				out.Print(static.RenderTable(static.CheckHeaders, rows))
			}

			failed := 0
			for _, r := range results {
				if !r.OK {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs %w to %q", failed, len(results), errNonConforming, typeName)
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(signedNumberHint)

	cmd.Flags().IntVarP(&maxLength, "max-length", "n", 0, "Length limit the text must respect (0 = no limit)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// checkAll validates every input with h, whose AfterCheck must return a bool.
func checkAll(h *texttype.Handler, inputs []string) ([]checkResult, error) {
	results := make([]checkResult, 0, len(inputs))
	for _, in := range inputs {
		v, err := h.Handle(texttype.ValueInput(in))
		if err != nil {
			return nil, err
		}
		ok, isBool := v.(bool)
		if !isBool {
			return nil, fmt.Errorf("check %q: unexpected result %T", h.Type(), v)
		}
		filtered, err := h.Filter(in)
		if err != nil {
			return nil, err
		}
		results = append(results, checkResult{Input: in, Filtered: filtered, OK: ok})
	}
	return results, nil
}
