//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package blackfriday

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrBufferFull is the sole failure mode any Buf operation can return,
// standing in for lowdown's allocation-exhaustion flag. Go's allocator
// doesn't hand back OOM as a recoverable error the way a C realloc does,
// so Buf returns it only when an append is called on a nil *Buf; errors
// from the underlying buffer or from PutFile's io.Reader are wrapped and
// returned as they are.
var ErrBufferFull = errors.New("blackfriday: buffer append failed")

// Buf is a growable byte buffer with fallible append, modeled on
// lowdown's hbuf but exposed with Go's bytes.Buffer as the backing store
// (the teacher's renderers write straight into *bytes.Buffer; Buf adds
// the primitives spec.md §4.1 requires that bytes.Buffer doesn't have:
// BufEqual, BufStrEq, BufPrefix, Clone, Truncate).
type Buf struct {
	b bytes.Buffer
}

// NewBuf returns an empty Buf.
func NewBuf() *Buf { return &Buf{} }

// Put appends src verbatim.
func (b *Buf) Put(src []byte) error {
	if b == nil {
		return ErrBufferFull
	}
	if _, err := b.b.Write(src); err != nil {
		return fmt.Errorf("blackfriday: put: %w", err)
	}
	return nil
}

// PutString appends s verbatim.
func (b *Buf) PutString(s string) error {
	if b == nil {
		return ErrBufferFull
	}
	if _, err := b.b.WriteString(s); err != nil {
		return fmt.Errorf("blackfriday: put: %w", err)
	}
	return nil
}

// Putc appends a single byte.
func (b *Buf) Putc(c byte) error {
	if b == nil {
		return ErrBufferFull
	}
	return b.b.WriteByte(c)
}

// Printf appends a formatted string.
func (b *Buf) Printf(format string, args ...interface{}) error {
	if b == nil {
		return ErrBufferFull
	}
	if _, err := fmt.Fprintf(&b.b, format, args...); err != nil {
		return fmt.Errorf("blackfriday: printf: %w", err)
	}
	return nil
}

// PutFile copies all of r into b.
func (b *Buf) PutFile(r io.Reader) error {
	if b == nil {
		return ErrBufferFull
	}
	if _, err := io.Copy(&b.b, r); err != nil {
		return fmt.Errorf("blackfriday: put_file: %w", err)
	}
	return nil
}

// PutOther appends the full contents of other without consuming it.
func (b *Buf) PutOther(other *Buf) error {
	if b == nil {
		return ErrBufferFull
	}
	if other == nil {
		return nil
	}
	return b.Put(other.Bytes())
}

// Truncate sets the length to 0 but retains the underlying capacity, so
// a scratch Buf can be reused across many nodes without re-allocating.
func (b *Buf) Truncate() {
	if b == nil {
		return
	}
	b.b.Reset()
}

// Grow ensures capacity for at least n more bytes without changing
// length.
func (b *Buf) Grow(n int) {
	if b == nil {
		return
	}
	b.b.Grow(n)
}

// Clone returns a new Buf holding a copy of b's bytes.
func (b *Buf) Clone() *Buf {
	out := NewBuf()
	if b == nil {
		return out
	}
	out.b.Write(b.b.Bytes())
	return out
}

// Bytes returns the accumulated bytes. The slice is only valid until the
// next mutating call.
func (b *Buf) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.b.Bytes()
}

// String returns the accumulated bytes as a string.
func (b *Buf) String() string {
	if b == nil {
		return ""
	}
	return b.b.String()
}

// Len returns the number of accumulated bytes.
func (b *Buf) Len() int {
	if b == nil {
		return 0
	}
	return b.b.Len()
}

// BufEqual reports whether a and b hold identical bytes.
func BufEqual(a, bb *Buf) bool {
	return bytes.Equal(a.Bytes(), bb.Bytes())
}

// BufStrEq reports whether b's contents equal s byte-for-byte.
func BufStrEq(b *Buf, s string) bool {
	return string(b.Bytes()) == s
}

// BufPrefix reports whether b's contents begin with prefix.
func BufPrefix(b *Buf, prefix string) bool {
	return bytes.HasPrefix(b.Bytes(), []byte(prefix))
}

// EndsWithNewline reports whether b is non-empty and its last byte is
// '\n'. Several renderers use this to decide whether a separating
// newline is still needed before opening a new block.
func (b *Buf) EndsWithNewline() bool {
	if b == nil || b.Len() == 0 {
		return false
	}
	return b.Bytes()[b.Len()-1] == '\n'
}
