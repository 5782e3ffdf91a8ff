// Package encoder implements the neopack encoder: an append-only byte
// buffer plus a stack of open container scopes (List, Map, Array) that
// guarantee well-formed output by construction.
//
// Every Encoder method that appends a value returns the Encoder itself so
// calls can be chained:
//
//	buf, err := encoder.New().
//		String("name").
//		Uint32(30).
//		Finish()
//
// Misuse of the builder — an oversize blob, a Map value appended without a
// preceding Key, pushing the wrong number of bytes into an Array slot — is
// a programmer error, not a data error, and panics immediately rather than
// threading an error return through every chained call. Finish is the one
// exception: it reports an unclosed scope as an error, since a caller may
// reasonably want to recover from forgetting an End call.
package encoder

import (
	"fmt"
	"unicode/utf8"

	"github.com/neopack-go/neopack/internal/pool"
	"github.com/neopack-go/neopack/wire"
)

// Violation is the panic value raised when the Encoder API is misused —
// writing to a non-top scope, exceeding a size limit the encoder itself
// controls, or mis-sequencing a Map's key/value pairs. It is never raised
// in response to data the caller does not control, only to calls the
// caller made incorrectly.
type Violation struct {
	msg string
}

func (v *Violation) Error() string { return "neopack: " + v.msg }

func violate(format string, args ...any) {
	panic(&Violation{msg: fmt.Sprintf(format, args...)})
}

// Encoder builds one neopack-encoded byte stream.
//
// An Encoder is exclusively owned by its scope stack: only the innermost
// open scope may be mutated, matching the single-threaded, non-reentrant
// resource model of the format. An Encoder is not safe for concurrent use.
type Encoder struct {
	buf    *pool.ByteBuffer
	scopes []scope
	done   bool
}

// New returns an Encoder ready to accept values.
func New() *Encoder {
	return &Encoder{buf: pool.Get()}
}

func (e *Encoder) checkNotDone() {
	if e.done {
		violate("encoder used after Finish")
	}
}

// topScope returns the innermost open scope, or nil if the encoder is at
// the top level.
func (e *Encoder) topScope() *scope {
	if len(e.scopes) == 0 {
		return nil
	}

	return &e.scopes[len(e.scopes)-1]
}

// recordValueAppended tells the innermost open scope (if any) that one
// complete value was just written to the buffer — a scalar, a blob, or a
// fully nested container. It enforces the per-kind sequencing rules from
// §4.2: a List counts every value, a Map requires a preceding Key and
// alternates state, an Array never accepts this path (its values go
// through Push, not the generic append path).
func (e *Encoder) recordValueAppended() {
	top := e.topScope()
	if top == nil {
		return
	}

	switch top.kind {
	case scopeKindList:
		top.count++
	case scopeKindMap:
		if top.mapState != mapAwaitingValue {
			violate("map value appended without a preceding key")
		}

		top.count++
		top.mapState = mapAwaitingKey
	case scopeKindArray:
		violate("array scope only accepts Push, not a direct value append")
	}
}

func (e *Encoder) appendScalar(tag wire.Tag, write func([]byte) []byte) *Encoder {
	e.checkNotDone()
	e.buf.B = wire.AppendTag(e.buf.B, tag)
	e.buf.B = write(e.buf.B)
	e.recordValueAppended()

	return e
}

// Bool appends a Bool value.
func (e *Encoder) Bool(v bool) *Encoder {
	return e.appendScalar(wire.TagBool, func(b []byte) []byte { return wire.AppendBool(b, v) })
}

// Int8 appends an S8 value.
func (e *Encoder) Int8(v int8) *Encoder {
	return e.appendScalar(wire.TagS8, func(b []byte) []byte { return wire.AppendS8(b, v) })
}

// Uint8 appends a U8 value.
func (e *Encoder) Uint8(v uint8) *Encoder {
	return e.appendScalar(wire.TagU8, func(b []byte) []byte { return wire.AppendU8(b, v) })
}

// Int16 appends an S16 value.
func (e *Encoder) Int16(v int16) *Encoder {
	return e.appendScalar(wire.TagS16, func(b []byte) []byte { return wire.AppendS16(b, v) })
}

// Uint16 appends a U16 value.
func (e *Encoder) Uint16(v uint16) *Encoder {
	return e.appendScalar(wire.TagU16, func(b []byte) []byte { return wire.AppendU16(b, v) })
}

// Int32 appends an S32 value.
func (e *Encoder) Int32(v int32) *Encoder {
	return e.appendScalar(wire.TagS32, func(b []byte) []byte { return wire.AppendS32(b, v) })
}

// Uint32 appends a U32 value.
func (e *Encoder) Uint32(v uint32) *Encoder {
	return e.appendScalar(wire.TagU32, func(b []byte) []byte { return wire.AppendU32(b, v) })
}

// Int64 appends an S64 value.
func (e *Encoder) Int64(v int64) *Encoder {
	return e.appendScalar(wire.TagS64, func(b []byte) []byte { return wire.AppendS64(b, v) })
}

// Uint64 appends a U64 value.
func (e *Encoder) Uint64(v uint64) *Encoder {
	return e.appendScalar(wire.TagU64, func(b []byte) []byte { return wire.AppendU64(b, v) })
}

// Float32 appends an F32 value.
func (e *Encoder) Float32(v float32) *Encoder {
	return e.appendScalar(wire.TagF32, func(b []byte) []byte { return wire.AppendF32(b, v) })
}

// Float64 appends an F64 value.
func (e *Encoder) Float64(v float64) *Encoder {
	return e.appendScalar(wire.TagF64, func(b []byte) []byte { return wire.AppendF64(b, v) })
}

func (e *Encoder) appendBlob(tag wire.Tag, data []byte) *Encoder {
	e.checkNotDone()

	if len(data) > wire.MaxSize {
		violate("%s length %d exceeds the %d-byte wire limit", tag, len(data), wire.MaxSize)
	}

	e.buf.B = wire.AppendTag(e.buf.B, tag)
	e.buf.B = wire.AppendU16LenPrefix(e.buf.B, len(data))
	e.buf.B = append(e.buf.B, data...)
	e.recordValueAppended()

	return e
}

// String appends a String value. Per I4, neopack admits only values that
// are already valid UTF-8 at the API — unlike a borrow-checked &str, a Go
// string carries no such guarantee, so String validates and treats a
// violation as encoder misuse rather than silently writing invalid bytes
// for the decoder to reject later.
func (e *Encoder) String(s string) *Encoder {
	e.checkNotDone()

	if !utf8.ValidString(s) {
		violate("string value is not valid UTF-8")
	}

	return e.appendBlob(wire.TagString, []byte(s))
}

// Bytes appends a Bytes value.
func (e *Encoder) Bytes(data []byte) *Encoder {
	return e.appendBlob(wire.TagBytes, data)
}

// Struct appends a Struct value. neopack treats the payload as opaque; it
// neither interprets nor validates its contents.
func (e *Encoder) Struct(data []byte) *Encoder {
	return e.appendBlob(wire.TagStruct, data)
}

// Finish closes out the encoder and returns the encoded bytes.
//
// Finish fails if any scope opened by List, Map, or Array was never closed
// with End — per I6, output is well-formed only if every opened scope was
// finalized. The returned slice is a copy; the encoder's internal buffer is
// released back to the pool before Finish returns, and every method on e
// panics if called again afterward.
func (e *Encoder) Finish() ([]byte, error) {
	e.checkNotDone()

	if len(e.scopes) > 0 {
		return nil, fmt.Errorf("neopack: Finish called with %d unclosed scope(s)", len(e.scopes))
	}

	out := make([]byte, len(e.buf.B))
	copy(out, e.buf.B)

	pool.Put(e.buf)
	e.buf = nil
	e.done = true

	return out, nil
}
