package encoder

import "github.com/neopack-go/neopack/wire"

// Array opens an Array scope: writes tag 0x23, the item tag, and stride,
// plus a placeholder u16 count, then pushes an Array scope onto the stack.
// stride must be in 1..=65535. Items are appended with Push, each
// supplying exactly stride raw bytes; Array never accepts a scalar/blob
// append directly. Close the scope with End.
func (e *Encoder) Array(itemTag wire.Tag, stride int) *Encoder {
	e.checkNotDone()

	if stride < 1 || stride > wire.MaxSize {
		violate("array stride %d out of range 1..=%d", stride, wire.MaxSize)
	}

	e.buf.B = wire.AppendTag(e.buf.B, wire.TagArray)
	e.buf.B = append(e.buf.B, byte(itemTag))
	e.buf.B = wire.AppendU16LenPrefix(e.buf.B, stride)
	offset := len(e.buf.B)
	e.buf.B = wire.AppendU16LenPrefix(e.buf.B, 0)

	e.pushScope(scope{kind: scopeKindArray, countOffset: offset, itemTag: itemTag, stride: stride})

	return e
}

// Push appends one array item. item must be exactly as long as the
// stride declared when the scope was opened.
//
// Push panics if the innermost scope is not an Array, if item's length
// doesn't match the declared stride, or if the resulting byte tally would
// exceed the 65535-byte wire limit (I2).
func (e *Encoder) Push(item []byte) *Encoder {
	e.checkNotDone()

	top := e.topScope()
	if top == nil || top.kind != scopeKindArray {
		violate("Push called outside an open array scope")
	}

	if len(item) != top.stride {
		violate("array item length %d does not match declared stride %d", len(item), top.stride)
	}

	if top.byteTally+len(item) > wire.MaxSize {
		violate("array byte tally %d exceeds the %d-byte wire limit", top.byteTally+len(item), wire.MaxSize)
	}

	e.buf.B = append(e.buf.B, item...)
	top.byteTally += len(item)
	top.count++

	return e
}
