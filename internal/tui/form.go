package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/qntx/clink/internal/harness"
)

var variants = []struct {
	name, desc string
}{
	{"source", "C compiled from inline source"},
	{"dylib", "prebuilt shared library, linked at build time"},
	{"staticlib", "prebuilt static archive, linked at build time"},
	{"dyload", "shared object loaded at run time"},
}

// CallForm collects a call configuration interactively. The selected
// variants all receive the same operands and label.
func CallForm(opts *harness.Options) (*harness.Options, error) {
	var (
		selected = []string{"source", "dylib", "staticlib", "dyload"}
		aStr     = "1"
		bStr     = "2"
		label    = "Lucy"
		capStr   = strconv.Itoa(harness.DefaultCapacity)
		libDir   = opts.LibDir
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Variants").
				Description("Which linkage paths to call").
				Options(variantOptions()...).
				Value(&selected),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Operand a").
				Value(&aStr).
				Validate(validInt32),

			huh.NewInput().
				Title("Operand b").
				Value(&bStr).
				Validate(validInt32),

			huh.NewInput().
				Title("Label").
				Description("Greeting label handed to the callee").
				Value(&label),

			huh.NewInput().
				Title("Capacity").
				Description("Buffer size in bytes").
				Value(&capStr).
				Validate(validCapacity(&label)),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Library Directory").
				Description("Where the runtime-loaded shared object lives").
				Placeholder(harness.DefaultLibDir).
				Value(&libDir),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}

	a, _ := strconv.ParseInt(strings.TrimSpace(aStr), 10, 32)
	b, _ := strconv.ParseInt(strings.TrimSpace(bStr), 10, 32)
	capacity, _ := strconv.Atoi(strings.TrimSpace(capStr))

	out := *opts
	out.LibDir = libDir
	out.Calls = nil
	for _, name := range selected {
		out.Calls = append(out.Calls, harness.Call{
			Variant:  name,
			A:        int32(a),
			B:        int32(b),
			Label:    label,
			Capacity: capacity,
		})
	}
	return &out, nil
}

func variantOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(variants))
	for i, v := range variants {
		opts[i] = huh.NewOption(fmt.Sprintf("%s: %s", v.name, v.desc), v.name)
	}
	return opts
}

func validInt32(s string) error {
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32); err != nil {
		return fmt.Errorf("not a 32-bit integer")
	}
	return nil
}

func validCapacity(label *string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			return fmt.Errorf("not a positive integer")
		}
		if n <= len(*label) {
			return fmt.Errorf("must exceed label length (%d)", len(*label))
		}
		return nil
	}
}
