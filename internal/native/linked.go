//go:build cgo

package native

// The prebuilt libraries live in csrc/build; see csrc/README.md for the
// external build step.

/*
#cgo LDFLAGS: -L${SRCDIR}/../../csrc/build -lclink_dy -lclink_static
#include <stdint.h>

extern int32_t clink_dylib_add(int32_t a, int32_t b, char *result);
extern int32_t clink_static_add(int32_t a, int32_t b, char *result);
*/
import "C"
import "unsafe"

// Dylib returns the variant linked against the prebuilt shared library.
func Dylib() Adder {
	return NewFunc("dylib", LinkageDylib, func(a, b int32, result *byte) int32 {
		return int32(C.clink_dylib_add(C.int32_t(a), C.int32_t(b), (*C.char)(unsafe.Pointer(result))))
	})
}

// Staticlib returns the variant linked against the prebuilt static
// archive.
func Staticlib() Adder {
	return NewFunc("staticlib", LinkageStatic, func(a, b int32, result *byte) int32 {
		return int32(C.clink_static_add(C.int32_t(a), C.int32_t(b), (*C.char)(unsafe.Pointer(result))))
	})
}
