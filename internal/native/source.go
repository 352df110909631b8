//go:build cgo

package native

/*
#include <stdint.h>
#include <stdio.h>
#include <string.h>

// Inline-compiled variant of the add contract. Behaves exactly like its
// prebuilt siblings in csrc/, tag aside: it trusts the caller-guaranteed
// capacity and writes without a bounds check.
static int32_t clink_source_add(int32_t a, int32_t b, char *result) {
	char label[256];
	int32_t sum = a + b;

	strncpy(label, result, sizeof(label) - 1);
	label[sizeof(label) - 1] = '\0';

	sprintf(result, "[C source] Hello %s! The result (%d + %d) is %d!", label, a, b, sum);
	return sum;
}
*/
// #cgo nocallback clink_source_add
// #cgo noescape clink_source_add
import "C"
import "unsafe"

// Source returns the variant compiled from the inline C source above.
func Source() Adder {
	return NewFunc("source", LinkageSource, func(a, b int32, result *byte) int32 {
		return int32(C.clink_source_add(C.int32_t(a), C.int32_t(b), (*C.char)(unsafe.Pointer(result))))
	})
}
