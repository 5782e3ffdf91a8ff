package decoder

import "github.com/neopack-go/neopack/wire"

// ArrayReader is a bounded sub-reader over an Array's fixed-stride items,
// produced by Reader.Array. Unlike List and Map, neopack never interprets
// an Array's raw bytes — ItemTag is exposed only as an observer so the
// caller can decide how to interpret each chunk.
type ArrayReader struct {
	r         *Reader
	itemTag   wire.Tag
	stride    int
	remaining int
}

// Array consumes tag 0x23, the item tag, and the stride and count fields
// at the cursor. Per I2, stride must be at least 1 — a zero stride is
// Malformed regardless of count, since it would let an Array of any
// declared count decode as zero bytes — and stride*count is computed in
// 64-bit arithmetic and checked against the 65535-byte wire limit before
// anything else; a violation is Malformed, not a silent truncation. Per
// the open question in §9, an empty array with a positive stride is valid
// and is not short-circuited.
func (r *Reader) Array() (*ArrayReader, error) {
	if err := r.need(1); err != nil {
		return nil, err
	}

	got := wire.Tag(r.buf[r.pos])
	if got != wire.TagArray {
		return nil, wire.TypeMismatch(wire.TagArray, got)
	}

	if err := r.need(6); err != nil {
		return nil, err
	}

	itemTag := wire.Tag(r.buf[r.pos+1])
	stride := wire.ReadU16LenPrefix(r.buf[r.pos+2 : r.pos+4])
	count := wire.ReadU16LenPrefix(r.buf[r.pos+4 : r.pos+6])

	if stride == 0 {
		return nil, wire.Malformed("array stride must be at least 1, got 0")
	}

	total := int64(stride) * int64(count)
	if total > wire.MaxSize {
		return nil, wire.Malformed("array stride*count overflow: %d*%d=%d exceeds %d", stride, count, total, wire.MaxSize)
	}

	r.pos += 6

	return &ArrayReader{r: r, itemTag: itemTag, stride: stride, remaining: count}, nil
}

// ItemTag returns the declared tag of each item. neopack does not itself
// interpret Array bytes against this tag; it is informational for the
// caller.
func (ar *ArrayReader) ItemTag() wire.Tag { return ar.itemTag }

// Stride returns the fixed byte width of each item.
func (ar *ArrayReader) Stride() int { return ar.stride }

// Remaining returns the number of items not yet produced by Next.
func (ar *ArrayReader) Remaining() int { return ar.remaining }

// Next returns the next stride-sized chunk, aliasing the input. ok is
// false once every item has been produced.
func (ar *ArrayReader) Next() ([]byte, bool, error) {
	if ar.remaining == 0 {
		return nil, false, nil
	}

	if err := ar.r.need(ar.stride); err != nil {
		return nil, false, err
	}

	chunk := ar.r.buf[ar.r.pos : ar.r.pos+ar.stride]
	ar.r.pos += ar.stride
	ar.remaining--

	return chunk, true, nil
}
