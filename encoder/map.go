package encoder

import (
	"unicode/utf8"

	"github.com/neopack-go/neopack/wire"
)

// Map opens a Map scope: writes tag 0x21 and a placeholder u16 pair count,
// then pushes a Map scope onto the stack. Each pair must be written as a
// Key call followed by exactly one value append (scalar, blob, or nested
// container); the value slot must be consumed exactly once, which is the
// central correctness rule of the map encoder (§4.2, §9). Close the scope
// with End.
func (e *Encoder) Map() *Encoder {
	e.checkNotDone()

	e.buf.B = wire.AppendTag(e.buf.B, wire.TagMap)
	offset := len(e.buf.B)
	e.buf.B = wire.AppendU16LenPrefix(e.buf.B, 0)

	e.pushScope(scope{kind: scopeKindMap, countOffset: offset, mapState: mapAwaitingKey})

	return e
}

// Key writes a Map entry's key (always a String, per I3) and arms the
// scope to accept exactly one value append next.
//
// Key panics if the innermost scope is not a Map awaiting a key — in
// particular, calling Key twice in a row without an intervening value is
// a programmer error, not a data error. Per I3, a Map entry's key is
// itself a String-tag value, so I4 binds it exactly as it binds String:
// Key validates s is UTF-8 for the same reason String does — a Go string
// carries no such guarantee the way the encoder's reference &str did.
func (e *Encoder) Key(s string) *Encoder {
	e.checkNotDone()

	top := e.topScope()
	if top == nil || top.kind != scopeKindMap {
		violate("Key called outside an open map scope")
	}

	if top.mapState != mapAwaitingKey {
		violate("Key called while a value is still owed for the previous key")
	}

	if !utf8.ValidString(s) {
		violate("map key is not valid UTF-8")
	}

	if len(s) > wire.MaxSize {
		violate("map key length %d exceeds the %d-byte wire limit", len(s), wire.MaxSize)
	}

	e.buf.B = wire.AppendTag(e.buf.B, wire.TagString)
	e.buf.B = wire.AppendU16LenPrefix(e.buf.B, len(s))
	e.buf.B = append(e.buf.B, s...)

	top.mapState = mapAwaitingValue

	return e
}
