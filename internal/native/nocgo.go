//go:build !cgo

package native

// Stubs keep the package compiling with cgo disabled. Every call reports
// ErrNoCgo.

func Source() Adder    { return NewFunc("source", LinkageSource, nil) }
func Dylib() Adder     { return NewFunc("dylib", LinkageDylib, nil) }
func Staticlib() Adder { return NewFunc("staticlib", LinkageStatic, nil) }
