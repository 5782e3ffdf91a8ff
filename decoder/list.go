package decoder

import "github.com/neopack-go/neopack/wire"

// ListReader is a bounded sub-reader over a List's elements, produced by
// Reader.List. Its state machine is Open(remaining=k) for k >= 0, then
// Drained once Next has reported count exhausted.
type ListReader struct {
	r         *Reader
	remaining int
}

// List consumes tag 0x20 and the u16 count at the cursor and returns a
// ListReader bounded to that many elements.
func (r *Reader) List() (*ListReader, error) {
	if err := r.need(1); err != nil {
		return nil, err
	}

	got := wire.Tag(r.buf[r.pos])
	if got != wire.TagList {
		return nil, wire.TypeMismatch(wire.TagList, got)
	}

	if err := r.need(3); err != nil {
		return nil, err
	}

	count := wire.ReadU16LenPrefix(r.buf[r.pos+1 : r.pos+3])
	r.pos += 3

	return &ListReader{r: r, remaining: count}, nil
}

// Remaining returns the number of elements not yet produced by Next.
func (lr *ListReader) Remaining() int { return lr.remaining }

// Next returns the next element as a tagged Value. ok is false once every
// element has been produced; further calls keep returning false.
//
// If the returned Value is itself a container (List, Map, or Array), its
// bytes are not consumed — the caller must fully traverse or skip it (via
// the parent Reader's List/Map/Array/SkipValue) before calling Next again,
// or the next call will observe the same bytes.
func (lr *ListReader) Next() (Value, bool, error) {
	if lr.remaining == 0 {
		return Value{}, false, nil
	}

	v, err := lr.r.Value()
	if err != nil {
		return Value{}, false, err
	}

	lr.remaining--

	return v, true, nil
}
