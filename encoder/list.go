package encoder

import "github.com/neopack-go/neopack/wire"

// List opens a List scope: writes tag 0x20 and a placeholder u16 count,
// then pushes a List scope onto the stack. Every scalar, blob, or nested
// container appended while this scope is innermost increments its count.
// Close the scope with End.
func (e *Encoder) List() *Encoder {
	e.checkNotDone()

	e.buf.B = wire.AppendTag(e.buf.B, wire.TagList)
	offset := len(e.buf.B)
	e.buf.B = wire.AppendU16LenPrefix(e.buf.B, 0)

	e.pushScope(scope{kind: scopeKindList, countOffset: offset})

	return e
}
