// Package harness prepares buffers, invokes the configured add variants
// in fixed sequential order, and prints each returned message and sum.
package harness

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/qntx/clink/internal/dyload"
	"github.com/qntx/clink/internal/msgbuf"
	"github.com/qntx/clink/internal/native"
	"github.com/qntx/clink/internal/ui"
)

// lookupFunc obtains the Adder for a variant name. The returned cleanup
// releases any handle the strategy holds; it may be nil.
type lookupFunc func(name string, opts *Options) (native.Adder, func() error, error)

// Runner executes the configured calls one after another. Any failure
// aborts the run; there is no retry or partial recovery.
type Runner struct {
	opts   *Options
	out    io.Writer
	lookup lookupFunc
}

// New creates a Runner writing results to stdout.
func New(opts *Options) *Runner {
	return &Runner{opts: opts, out: os.Stdout, lookup: defaultLookup}
}

// Run invokes every configured call in order.
func (r *Runner) Run() error {
	for _, c := range r.opts.Calls {
		if err := r.runCall(c); err != nil {
			return fmt.Errorf("%s: %w", c.Variant, err)
		}
	}
	return nil
}

func (r *Runner) runCall(c Call) error {
	adder, cleanup, err := r.lookup(c.Variant, r.opts)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	buf, err := msgbuf.New(c.Label, c.Capacity)
	if err != nil {
		return err
	}

	ui.Step("calling %s (%s linkage)", adder.Name(), adder.Linkage())

	sum, err := adder.Add(c.A, c.B, buf)
	if err != nil {
		return err
	}

	msg, _, err := buf.Message()
	if err != nil {
		return fmt.Errorf("read back: %w", err)
	}

	fmt.Fprintln(r.out, msg)
	fmt.Fprintf(r.out, "result: %d\n", sum)
	return nil
}

func defaultLookup(name string, opts *Options) (native.Adder, func() error, error) {
	if native.Linkage(name) == native.LinkageRuntime {
		return runtimeAdder(opts)
	}

	adder, ok := native.Lookup(name)
	if !ok {
		return nil, nil, fmt.Errorf("unknown variant %q", name)
	}
	return adder, nil, nil
}

// runtimeAdder opens the shared object, resolves the symbol, and hands
// the library's Close back as the cleanup so the handle lives exactly as
// long as the call.
func runtimeAdder(opts *Options) (native.Adder, func() error, error) {
	path := filepath.Join(opts.LibDir, dyload.Filename(opts.LibName))
	if opts.Verbose {
		ui.Label("library", path)
		ui.Label("symbol", opts.Symbol)
	}

	lib, err := dyload.Open(path)
	if err != nil {
		return nil, nil, err
	}

	adder, err := lib.Adder(opts.Symbol)
	if err != nil {
		lib.Close()
		return nil, nil, err
	}
	return adder, lib.Close, nil
}
