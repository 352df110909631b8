// Package native exposes one C-compatible add-and-greet function through
// interchangeable linkage strategies. Callers see a single Adder
// interface; how the underlying function address was obtained — compiled
// from inline source, linked against a prebuilt library, or resolved from
// a shared object at run time — is the strategy's concern.
package native

import (
	"errors"
	"fmt"

	"github.com/qntx/clink/internal/msgbuf"
)

// Linkage identifies how an Adder implementation was bound to the process.
type Linkage string

const (
	LinkageSource  Linkage = "source"
	LinkageDylib   Linkage = "dylib"
	LinkageStatic  Linkage = "staticlib"
	LinkageRuntime Linkage = "dyload"
)

func (l Linkage) Valid() bool {
	return l == LinkageSource || l == LinkageDylib || l == LinkageStatic || l == LinkageRuntime
}

// ErrNoCgo is reported by link-time variants in binaries built with cgo
// disabled.
var ErrNoCgo = errors.New("built without cgo")

// Adder computes a+b and writes a greeting embedding the buffer's label
// and the sum back into the buffer. Implementations behave identically
// apart from the tag in their message.
type Adder interface {
	Name() string
	Linkage() Linkage
	Add(a, b int32, buf *msgbuf.Buffer) (int32, error)
}

// AddFunc is the Go shape of the native contract:
// (int32, int32, char*) -> int32.
type AddFunc func(a, b int32, result *byte) int32

// NewFunc wraps a raw native function in the Adder interface. A nil fn
// yields an Adder whose calls fail with ErrNoCgo.
func NewFunc(name string, linkage Linkage, fn AddFunc) Adder {
	return funcAdder{name: name, linkage: linkage, fn: fn}
}

type funcAdder struct {
	name    string
	linkage Linkage
	fn      AddFunc
}

func (f funcAdder) Name() string     { return f.name }
func (f funcAdder) Linkage() Linkage { return f.linkage }

func (f funcAdder) Add(a, b int32, buf *msgbuf.Buffer) (int32, error) {
	if f.fn == nil {
		return 0, fmt.Errorf("%s: %w", f.name, ErrNoCgo)
	}
	return f.fn(a, b, buf.Ptr()), nil
}

// Variants returns the link-time implementations in their fixed
// invocation order. The runtime-loaded variant is constructed separately
// because it needs a library path.
func Variants() []Adder {
	return []Adder{Source(), Dylib(), Staticlib()}
}

// Lookup finds a link-time variant by name.
func Lookup(name string) (Adder, bool) {
	for _, a := range Variants() {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}
