package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qntx/clink/internal/harness"
	"github.com/qntx/clink/internal/tui"
	"github.com/qntx/clink/internal/ui"
)

type callFlags struct {
	config      string
	a, b        int32
	label       string
	capacity    int
	libDir      string
	libName     string
	symbol      string
	interactive bool
	verbose     bool
}

var (
	cFlags  callFlags
	callCmd = &cobra.Command{
		Use:   "call [variants...]",
		Short: "Invoke add variants and print their greetings",
		Long: `Call invokes the named add variants in order and prints the message
each one writes back, followed by the numeric sum.

Variants: source, dylib, staticlib, dyload. With no variants and no
clink.toml, the canonical demonstration set runs: all four variants with
their traditional operands and labels.

Configuration can be loaded from clink.toml in the current or parent
directories. CLI flags override config file values.`,
		RunE: runCall,
	}
)

func init() {
	f := callCmd.Flags()
	f.StringVarP(&cFlags.config, "config", "c", "", "config file path (default: clink.toml)")
	f.Int32VarP(&cFlags.a, "operand-a", "a", 1, "first operand")
	f.Int32VarP(&cFlags.b, "operand-b", "b", 2, "second operand")
	f.StringVar(&cFlags.label, "label", "Lucy", "greeting label handed to the callee")
	f.IntVar(&cFlags.capacity, "capacity", harness.DefaultCapacity, "buffer capacity in bytes")
	f.StringVar(&cFlags.libDir, "lib-dir", "", "directory of the runtime-loaded shared object")
	f.StringVar(&cFlags.libName, "lib", "", "base name of the runtime-loaded shared object")
	f.StringVar(&cFlags.symbol, "symbol", "", "symbol to resolve from the shared object")
	f.BoolVarP(&cFlags.interactive, "interactive", "i", false, "interactive mode")
	f.BoolVarP(&cFlags.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd, args)
	if err != nil {
		return err
	}

	if cFlags.interactive {
		opts, err = tui.CallForm(opts)
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
	}

	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return err
	}

	if err := harness.New(opts).Run(); err != nil {
		return err
	}

	ui.Success("%d call(s) completed", len(opts.Calls))
	return nil
}

// loadOptions merges config file, variant arguments, and flag overrides,
// in that order of precedence (lowest first).
func loadOptions(cmd *cobra.Command, args []string) (*harness.Options, error) {
	cfg, err := harness.LoadConfig(cFlags.config)
	if err != nil && !errors.Is(err, harness.ErrConfigNotFound) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err == nil {
		opts := cfg.ToOptions(args)
		applyFlagOverrides(cmd, opts)
		return opts, nil
	}

	opts := &harness.Options{Calls: buildCalls(args)}
	applyFlagOverrides(cmd, opts)
	return opts, nil
}

// buildCalls produces one call per named variant using the flag values.
// No variants means the canonical set, which Normalize fills in.
func buildCalls(variants []string) []harness.Call {
	calls := make([]harness.Call, 0, len(variants))
	for _, name := range variants {
		calls = append(calls, harness.Call{
			Variant:  name,
			A:        cFlags.a,
			B:        cFlags.b,
			Label:    cFlags.label,
			Capacity: cFlags.capacity,
		})
	}
	return calls
}

func applyFlagOverrides(cmd *cobra.Command, o *harness.Options) {
	changed := cmd.Flags().Changed

	for i := range o.Calls {
		if changed("operand-a") {
			o.Calls[i].A = cFlags.a
		}
		if changed("operand-b") {
			o.Calls[i].B = cFlags.b
		}
		if changed("label") {
			o.Calls[i].Label = cFlags.label
		}
		if changed("capacity") {
			o.Calls[i].Capacity = cFlags.capacity
		}
	}

	if changed("lib-dir") {
		o.LibDir = cFlags.libDir
	}
	if changed("lib") {
		o.LibName = cFlags.libName
	}
	if changed("symbol") {
		o.Symbol = cFlags.symbol
	}
	if changed("verbose") {
		o.Verbose = cFlags.verbose
	}
}
