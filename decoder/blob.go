package decoder

import (
	"unicode/utf8"
	"unsafe"

	"github.com/neopack-go/neopack/wire"
)

// readBlob checks tag, reads the u16 length, ensures that many bytes are
// available, validates UTF-8 for String, and returns the payload aliasing
// the input. The cursor advances only once every check has passed.
func (r *Reader) readBlob(want wire.Tag) ([]byte, error) {
	if err := r.need(1); err != nil {
		return nil, err
	}

	got := wire.Tag(r.buf[r.pos])
	if got != want {
		return nil, wire.TypeMismatch(want, got)
	}

	if err := r.need(3); err != nil {
		return nil, err
	}

	length := wire.ReadU16LenPrefix(r.buf[r.pos+1 : r.pos+3])
	total := 3 + length

	if err := r.need(total); err != nil {
		return nil, err
	}

	payload := r.buf[r.pos+3 : r.pos+total]

	if want == wire.TagString && !utf8.Valid(payload) {
		return nil, wire.InvalidUTF8()
	}

	r.pos += total

	return payload, nil
}

// String reads a String value. The returned string aliases the input's
// backing array (no copy); it must not outlive the caller's use of that
// input.
func (r *Reader) String() (string, error) {
	p, err := r.readBlob(wire.TagString)
	if err != nil {
		return "", err
	}

	if len(p) == 0 {
		return "", nil
	}

	return unsafe.String(unsafe.SliceData(p), len(p)), nil
}

// Bytes reads a Bytes value. The returned slice aliases the input.
func (r *Reader) Bytes() ([]byte, error) {
	return r.readBlob(wire.TagBytes)
}

// Struct reads a Struct value as an opaque blob; neopack does not
// interpret its contents. The returned slice aliases the input.
func (r *Reader) Struct() ([]byte, error) {
	return r.readBlob(wire.TagStruct)
}
