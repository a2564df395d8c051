package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/textctl/internal/config"
	"github.com/raphi011/textctl/texttype"
)

type registryKey struct{}

// withRegistry attaches the type registry commands resolve names in.
func withRegistry(ctx context.Context, reg *texttype.Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, reg)
}

// registryFromContext returns the attached registry, texttype.Default if none.
func registryFromContext(ctx context.Context) *texttype.Registry {
	if reg, ok := ctx.Value(registryKey{}).(*texttype.Registry); ok {
		return reg
	}
	return texttype.Default
}

// configFromContext returns the attached config, defaults if none.
func configFromContext(ctx context.Context) *config.Config {
	if cfg := config.FromContext(ctx); cfg != nil {
		return cfg
	}
	cfg := config.Default()
	return &cfg
}

var errNoInput = errors.New("no input: pass text as arguments or pipe it on stdin")

// readInputs returns args when given, otherwise one input per stdin line.
// An interactive stdin is refused rather than waited on.
func readInputs(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if isTerminal(in) {
		return nil, errNoInput
	}

	var inputs []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(inputs) == 0 {
		return nil, errNoInput
	}
	return inputs, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveMaxLength prefers an explicit --max-length over config defaults.
func resolveMaxLength(cmd *cobra.Command, flagValue int, cfg *config.Config, typeName string) int {
	if cmd.Flags().Changed("max-length") {
		return flagValue
	}
	return cfg.MaxLengthFor(typeName)
}

// newHandler builds a handler bound to the registry in ctx.
func newHandler(ctx context.Context, typeName string, maxLength int, opts ...texttype.Option) *texttype.Handler {
	opts = append([]texttype.Option{
		texttype.WithRegistry(registryFromContext(ctx)),
		texttype.WithMaxLength(maxLength),
	}, opts...)
	return texttype.New(typeName, opts...)
}

// signedNumberFlagRe matches pflag's error for text like "-45" taken as
// a cluster of shorthand flags.
var signedNumberFlagRe = regexp.MustCompile(`^unknown shorthand flag: '.' in -[0-9.]`)

// signedNumberHint is a flag error func pointing at "--" when a signed
// number was parsed as flags.
func signedNumberHint(cmd *cobra.Command, err error) error {
	if signedNumberFlagRe.MatchString(err.Error()) {
		return fmt.Errorf("%w (pass signed numbers after --, e.g. textctl %s int -- -45)", err, cmd.Name())
	}
	return err
}
