package decoder

import "github.com/neopack-go/neopack/wire"

// readScalar checks that tag+payload bytes are available (Pending
// otherwise), then that the byte at the cursor matches want (TypeMismatch
// otherwise), and on success returns the payload slice and advances the
// cursor past tag+payload. The cursor is untouched on either error.
func (r *Reader) readScalar(want wire.Tag, size int) ([]byte, error) {
	total := 1 + size
	if err := r.need(total); err != nil {
		return nil, err
	}

	got := wire.Tag(r.buf[r.pos])
	if got != want {
		return nil, wire.TypeMismatch(want, got)
	}

	payload := r.buf[r.pos+1 : r.pos+total]
	r.pos += total

	return payload, nil
}

// Bool reads a Bool value.
func (r *Reader) Bool() (bool, error) {
	p, err := r.readScalar(wire.TagBool, 1)
	if err != nil {
		return false, err
	}

	return wire.ReadBool(p), nil
}

// Int8 reads an S8 value.
func (r *Reader) Int8() (int8, error) {
	p, err := r.readScalar(wire.TagS8, 1)
	if err != nil {
		return 0, err
	}

	return wire.ReadS8(p), nil
}

// Uint8 reads a U8 value.
func (r *Reader) Uint8() (uint8, error) {
	p, err := r.readScalar(wire.TagU8, 1)
	if err != nil {
		return 0, err
	}

	return wire.ReadU8(p), nil
}

// Int16 reads an S16 value.
func (r *Reader) Int16() (int16, error) {
	p, err := r.readScalar(wire.TagS16, 2)
	if err != nil {
		return 0, err
	}

	return wire.ReadS16(p), nil
}

// Uint16 reads a U16 value.
func (r *Reader) Uint16() (uint16, error) {
	p, err := r.readScalar(wire.TagU16, 2)
	if err != nil {
		return 0, err
	}

	return wire.ReadU16(p), nil
}

// Int32 reads an S32 value.
func (r *Reader) Int32() (int32, error) {
	p, err := r.readScalar(wire.TagS32, 4)
	if err != nil {
		return 0, err
	}

	return wire.ReadS32(p), nil
}

// Uint32 reads a U32 value.
func (r *Reader) Uint32() (uint32, error) {
	p, err := r.readScalar(wire.TagU32, 4)
	if err != nil {
		return 0, err
	}

	return wire.ReadU32(p), nil
}

// Int64 reads an S64 value.
func (r *Reader) Int64() (int64, error) {
	p, err := r.readScalar(wire.TagS64, 8)
	if err != nil {
		return 0, err
	}

	return wire.ReadS64(p), nil
}

// Uint64 reads a U64 value.
func (r *Reader) Uint64() (uint64, error) {
	p, err := r.readScalar(wire.TagU64, 8)
	if err != nil {
		return 0, err
	}

	return wire.ReadU64(p), nil
}

// Float32 reads an F32 value.
func (r *Reader) Float32() (float32, error) {
	p, err := r.readScalar(wire.TagF32, 4)
	if err != nil {
		return 0, err
	}

	return wire.ReadF32(p), nil
}

// Float64 reads an F64 value.
func (r *Reader) Float64() (float64, error) {
	p, err := r.readScalar(wire.TagF64, 8)
	if err != nil {
		return 0, err
	}

	return wire.ReadF64(p), nil
}
