// Package msgbuf implements the fixed-capacity message buffer exchanged
// with the native add functions.
//
// The native contract is label-in, message-out over one caller-owned
// buffer: the callee reads a NUL-terminated label from the front of the
// buffer, overwrites the contents with a NUL-terminated greeting, and the
// caller reads the greeting back. The callee never sees the capacity, so
// this package keeps the bookkeeping on the Go side: construction
// guarantees room for the label plus terminator, and read-back reports a
// missing terminator or invalid text as an error instead of undefined
// behavior.
package msgbuf

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrLabelTooLong = errors.New("label does not fit in buffer")
	ErrNoTerminator = errors.New("no NUL terminator in buffer")
	ErrInvalidText  = errors.New("buffer does not contain valid text")
)

// Buffer is a fixed-capacity byte buffer handed across the native
// boundary. Ownership transfers to the callee for the duration of one
// call and returns to the caller when the call does.
type Buffer struct {
	label string
	data  []byte
}

// New returns a Buffer of exactly capacity bytes whose leading bytes hold
// label and whose tail is zeroed. A label that does not leave at least one
// byte for the terminator is rejected, not truncated: the label is echoed
// back inside the native message, and a silently shortened label would
// misreport what was sent.
func New(label string, capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity %d: must be positive", capacity)
	}
	if len(label) >= capacity {
		return nil, fmt.Errorf("label %q in %d bytes: %w", label, capacity, ErrLabelTooLong)
	}

	b := &Buffer{label: label, data: make([]byte, capacity)}
	copy(b.data, label)
	return b, nil
}

// Ptr returns a pointer to the first byte, for handing to a native callee.
func (b *Buffer) Ptr() *byte { return &b.data[0] }

// Bytes returns the backing storage. Callees reached without crossing the
// C boundary write their message through this.
func (b *Buffer) Bytes() []byte { return b.data }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Label returns the label the buffer was prepared with.
func (b *Buffer) Label() string { return b.label }

// Message reads the buffer back as a NUL-terminated string and returns it
// along with the number of bytes written before the terminator. A missing
// terminator means the callee overran the capacity contract; text that is
// not valid UTF-8 cannot be printed. Both are terminal for the run.
func (b *Buffer) Message() (string, int, error) {
	i := bytes.IndexByte(b.data, 0)
	if i < 0 {
		return "", 0, fmt.Errorf("%d byte buffer: %w", len(b.data), ErrNoTerminator)
	}

	msg := string(b.data[:i])
	if !utf8.ValidString(msg) {
		return "", 0, fmt.Errorf("%d bytes written: %w", i, ErrInvalidText)
	}
	return msg, i, nil
}
