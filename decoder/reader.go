// Package decoder implements the neopack decoder: a cursor over an
// immutable input slice exposing typed scalar readers, a generic tagged
// value reader, and bounded sub-readers for List, Map, and Array traversal.
//
// Every read method is total: it either returns a decoded value and
// advances the cursor, or returns an error and leaves the cursor exactly
// where it was. A Pending error means the input slice doesn't yet hold
// enough bytes for the call that produced it; the caller is expected to
// append more bytes to its buffer and retry the identical call. The
// decoder performs zero allocation on the read path: String, Bytes, and
// Struct payloads, and Array chunks, are slices into the caller's input and
// share its lifetime.
package decoder

import "github.com/neopack-go/neopack/wire"

// Reader is a cursor over an immutable byte slice.
//
// A Reader is not safe for concurrent use. A sub-reader (ListReader,
// MapReader, ArrayReader) exclusively borrows its parent Reader's cursor
// for the duration of its traversal.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of buf. buf is never
// copied or modified; every borrowed slice this Reader returns aliases it.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current cursor position.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the underlying input.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// need reports a Pending error carrying the exact shortfall if fewer than
// n bytes remain unread; it never advances the cursor.
func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return wire.Pending(n - r.Remaining())
	}

	return nil
}

// peekTag returns the tag byte at the cursor without advancing it.
func (r *Reader) peekTag() (wire.Tag, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}

	return wire.Tag(r.buf[r.pos]), nil
}
