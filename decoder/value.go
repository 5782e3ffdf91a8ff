package decoder

import "github.com/neopack-go/neopack/wire"

// Value is a tagged sum over every value shape neopack can encode. Tag
// names which field (if any) is populated. For List, Map, and Array, Value
// is a container descriptor only — Value does not traverse or decode the
// container's elements, and the Reader's cursor is left unadvanced so the
// caller can re-enter with List, Map, or Array, or skip the whole value
// with SkipValue.
type Value struct {
	Tag wire.Tag

	Bool    bool
	Int8    int8
	Uint8   uint8
	Int16   int16
	Uint16  uint16
	Int32   int32
	Uint32  uint32
	Int64   int64
	Uint64  uint64
	Float32 float32
	Float64 float64

	// Blob holds the String/Bytes/Struct payload, aliasing the input.
	Blob []byte
}

// Value reads the next value as a tagged sum without requiring the caller
// to know its shape in advance.
//
// Scalar and blob variants fully decode and advance the cursor. Container
// variants (List, Map, Array) leave the cursor at the container's tag byte
// — the caller must call List, Map, Array, or SkipValue before reading
// anything else from r, or the next read will see the same container tag
// again.
func (r *Reader) Value() (Value, error) {
	tag, err := r.peekTag()
	if err != nil {
		return Value{}, err
	}

	switch tag {
	case wire.TagBool:
		v, err := r.Bool()
		return Value{Tag: tag, Bool: v}, err
	case wire.TagS8:
		v, err := r.Int8()
		return Value{Tag: tag, Int8: v}, err
	case wire.TagU8:
		v, err := r.Uint8()
		return Value{Tag: tag, Uint8: v}, err
	case wire.TagS16:
		v, err := r.Int16()
		return Value{Tag: tag, Int16: v}, err
	case wire.TagU16:
		v, err := r.Uint16()
		return Value{Tag: tag, Uint16: v}, err
	case wire.TagS32:
		v, err := r.Int32()
		return Value{Tag: tag, Int32: v}, err
	case wire.TagU32:
		v, err := r.Uint32()
		return Value{Tag: tag, Uint32: v}, err
	case wire.TagS64:
		v, err := r.Int64()
		return Value{Tag: tag, Int64: v}, err
	case wire.TagU64:
		v, err := r.Uint64()
		return Value{Tag: tag, Uint64: v}, err
	case wire.TagF32:
		v, err := r.Float32()
		return Value{Tag: tag, Float32: v}, err
	case wire.TagF64:
		v, err := r.Float64()
		return Value{Tag: tag, Float64: v}, err
	case wire.TagString, wire.TagBytes, wire.TagStruct:
		v, err := r.readBlob(tag)
		return Value{Tag: tag, Blob: v}, err
	case wire.TagList, wire.TagMap, wire.TagArray:
		return Value{Tag: tag}, nil
	default:
		return Value{}, wire.InvalidTag(byte(tag))
	}
}

// SkipValue advances the cursor past exactly one value without exposing
// its content. For a container, the skip length is computed by measuring
// its elements (recursively for List and Map, by stride*count for Array)
// against a read-only probe that never mutates the cursor; only once the
// full length is known does the cursor advance, in one step. This keeps
// SkipValue retry-safe: on Pending, the cursor is exactly where it was
// before the call, even if the value being skipped is a large container.
func (r *Reader) SkipValue() error {
	n, err := measureValue(r.buf, r.pos)
	if err != nil {
		return err
	}

	r.pos += n

	return nil
}
