package harness

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/qntx/clink/internal/msgbuf"
	"github.com/qntx/clink/internal/native"
)

// fakeAdder behaves like the C implementations without crossing the
// native boundary: read the label, overwrite the buffer with a greeting,
// return the sum.
type fakeAdder struct {
	name string
}

func (f fakeAdder) Name() string            { return f.name }
func (f fakeAdder) Linkage() native.Linkage { return native.LinkageSource }

func (f fakeAdder) Add(a, b int32, buf *msgbuf.Buffer) (int32, error) {
	sum := a + b
	data := buf.Bytes()
	label := data[:bytes.IndexByte(data, 0)]
	msg := fmt.Sprintf("[%s] Hello %s! The result (%d + %d) is %d!", f.name, label, a, b, sum)
	copy(data, msg)
	data[len(msg)] = 0
	return sum, nil
}

type failingAdder struct{ err error }

func (f failingAdder) Name() string            { return "failing" }
func (f failingAdder) Linkage() native.Linkage { return native.LinkageRuntime }
func (f failingAdder) Add(a, b int32, buf *msgbuf.Buffer) (int32, error) {
	return 0, f.err
}

func TestRunner_Run(t *testing.T) {
	opts := &Options{Calls: []Call{
		{Variant: "source", A: 1, B: 2, Label: "Lucy", Capacity: 1024},
		{Variant: "staticlib", A: 3, B: 4, Label: "Chen", Capacity: 1024},
	}}

	var out bytes.Buffer
	var invoked []string
	r := &Runner{
		opts: opts,
		out:  &out,
		lookup: func(name string, _ *Options) (native.Adder, func() error, error) {
			invoked = append(invoked, name)
			return fakeAdder{name: name}, nil, nil
		},
	}

	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got, want := invoked, []string{"source", "staticlib"}; !equalStrings(got, want) {
		t.Errorf("invocation order = %v, want %v", got, want)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := []string{
		"[source] Hello Lucy! The result (1 + 2) is 3!",
		"result: 3",
		"[staticlib] Hello Chen! The result (3 + 4) is 7!",
		"result: 7",
	}
	if !equalStrings(lines, want) {
		t.Errorf("output = %q, want %q", lines, want)
	}
}

func TestRunner_Run_FailureAborts(t *testing.T) {
	wantErr := errors.New("library exploded")
	opts := &Options{Calls: []Call{
		{Variant: "dyload", A: 8, B: 9, Label: "Jack", Capacity: 1024},
		{Variant: "source", A: 1, B: 2, Label: "Lucy", Capacity: 1024},
	}}

	var out bytes.Buffer
	var invoked []string
	r := &Runner{
		opts: opts,
		out:  &out,
		lookup: func(name string, _ *Options) (native.Adder, func() error, error) {
			invoked = append(invoked, name)
			if name == "dyload" {
				return failingAdder{err: wantErr}, nil, nil
			}
			return fakeAdder{name: name}, nil, nil
		},
	}

	err := r.Run()
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v, want %v", err, wantErr)
	}
	if len(invoked) != 1 {
		t.Errorf("later variants ran after failure: %v", invoked)
	}
	if out.Len() != 0 {
		t.Errorf("output after failure = %q, want empty", out.String())
	}
}

func TestRunner_Run_CleanupRuns(t *testing.T) {
	closed := false
	opts := &Options{Calls: []Call{
		{Variant: "dyload", A: 8, B: 9, Label: "Jack", Capacity: 1024},
	}}

	var out bytes.Buffer
	r := &Runner{
		opts: opts,
		out:  &out,
		lookup: func(name string, _ *Options) (native.Adder, func() error, error) {
			return fakeAdder{name: name}, func() error { closed = true; return nil }, nil
		},
	}

	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !closed {
		t.Error("cleanup did not run")
	}
}

func TestRunner_Run_ReadBackFailure(t *testing.T) {
	opts := &Options{Calls: []Call{
		{Variant: "source", A: 1, B: 2, Label: "x", Capacity: 8},
	}}

	var out bytes.Buffer
	r := &Runner{
		opts: opts,
		out:  &out,
		lookup: func(name string, _ *Options) (native.Adder, func() error, error) {
			return overrunAdder{}, nil, nil
		},
	}

	err := r.Run()
	if !errors.Is(err, msgbuf.ErrNoTerminator) {
		t.Fatalf("Run() error = %v, want %v", err, msgbuf.ErrNoTerminator)
	}
}

// overrunAdder fills the buffer without a terminator, simulating a callee
// that wrote past capacity.
type overrunAdder struct{}

func (overrunAdder) Name() string            { return "overrun" }
func (overrunAdder) Linkage() native.Linkage { return native.LinkageSource }
func (overrunAdder) Add(a, b int32, buf *msgbuf.Buffer) (int32, error) {
	data := buf.Bytes()
	for i := range data {
		data[i] = 'A'
	}
	return a + b, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
