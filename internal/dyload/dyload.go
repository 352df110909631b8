// Package dyload binds the add contract from a shared object at run
// time. It is the late-bound counterpart to the link-time variants in
// package native: open a library by path, resolve one symbol, hand back a
// typed Adder. Failures are terminal for the run; callers propagate them
// and never retry.
package dyload

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/ebitengine/purego"

	"github.com/qntx/clink/internal/native"
)

var (
	ErrLibraryNotFound = errors.New("shared library not found")
	ErrSymbolNotFound  = errors.New("symbol not found")
)

// Library is an open handle to a shared object. The lifecycle is open,
// resolve once, call, Close.
type Library struct {
	handle uintptr
	path   string
}

// Open loads the shared object at path.
func Open(path string) (*Library, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrLibraryNotFound)
	}

	handle, err := dlopen(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrLibraryNotFound, err)
	}
	return &Library{handle: handle, path: path}, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string { return l.path }

// Adder resolves symbol to the add contract and returns it behind the
// same strategy interface the link-time variants implement, so callers
// stay agnostic to how the function was bound.
func (l *Library) Adder(symbol string) (native.Adder, error) {
	addr, err := dlsym(l.handle, symbol)
	if err != nil {
		return nil, fmt.Errorf("%s in %s: %w: %v", symbol, l.path, ErrSymbolNotFound, err)
	}

	var fn func(a, b int32, result *byte) int32
	purego.RegisterFunc(&fn, addr)

	return native.NewFunc("dyload", native.LinkageRuntime, fn), nil
}

// Close releases the library handle. The resolved function must not be
// called afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := dlclose(l.handle)
	l.handle = 0
	return err
}

// Filename maps a library base name to the host platform's shared object
// naming convention.
func Filename(base string) string {
	return filenameFor(runtime.GOOS, base)
}

func filenameFor(goos, base string) string {
	switch goos {
	case "windows":
		return base + ".dll"
	case "darwin":
		return "lib" + base + ".dylib"
	default:
		return "lib" + base + ".so"
	}
}
