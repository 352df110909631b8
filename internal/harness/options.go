package harness

import (
	"fmt"

	"github.com/qntx/clink/internal/native"
)

const (
	DefaultCapacity = 1024
	DefaultSymbol   = "dyloading_add"
	DefaultLibName  = "clink_loading"
	DefaultLibDir   = "csrc/build"
)

// Call describes one invocation of an add variant. Variant names match
// the native.Linkage values: source, dylib, staticlib, dyload.
type Call struct {
	Variant  string
	A, B     int32
	Label    string
	Capacity int
}

// Options configures a harness run.
type Options struct {
	Calls []Call

	// Runtime loading
	LibDir  string
	LibName string
	Symbol  string

	Verbose bool
}

// Normalize applies defaults for unset fields. An empty call list becomes
// the canonical demonstration set.
func (o *Options) Normalize() {
	if len(o.Calls) == 0 {
		o.Calls = DefaultCalls()
	}
	for i := range o.Calls {
		if o.Calls[i].Capacity == 0 {
			o.Calls[i].Capacity = DefaultCapacity
		}
	}
	if o.LibDir == "" {
		o.LibDir = DefaultLibDir
	}
	if o.LibName == "" {
		o.LibName = DefaultLibName
	}
	if o.Symbol == "" {
		o.Symbol = DefaultSymbol
	}
}

// Validate checks variant names and buffer arithmetic before any native
// code runs.
func (o *Options) Validate() error {
	for _, c := range o.Calls {
		if !native.Linkage(c.Variant).Valid() {
			return fmt.Errorf("unknown variant %q", c.Variant)
		}
		if len(c.Label) >= c.Capacity {
			return fmt.Errorf("%s: label %q does not fit in %d bytes", c.Variant, c.Label, c.Capacity)
		}
	}
	return nil
}

// DefaultCalls returns the canonical demonstration set in its fixed,
// sequential order.
func DefaultCalls() []Call {
	return []Call{
		{Variant: "source", A: 1, B: 2, Label: "Lucy", Capacity: DefaultCapacity},
		{Variant: "dylib", A: 1, B: 2, Label: "Lee", Capacity: DefaultCapacity},
		{Variant: "staticlib", A: 3, B: 4, Label: "Chen", Capacity: DefaultCapacity},
		{Variant: "dyload", A: 8, B: 9, Label: "Jack", Capacity: DefaultCapacity},
	}
}
