package encoder

import "github.com/neopack-go/neopack/wire"

type scopeKind uint8

const (
	scopeKindList scopeKind = iota
	scopeKindMap
	scopeKindArray
)

type mapState uint8

const (
	mapAwaitingKey mapState = iota
	mapAwaitingValue
)

// scope is an open container on the encoder's scope stack. countOffset is
// the absolute byte offset, inside e.buf.B, of the placeholder u16 count
// written when the scope was opened; End backpatches it in place.
type scope struct {
	kind        scopeKind
	countOffset int
	count       int

	// Map-only state.
	mapState mapState

	// Array-only state.
	itemTag   wire.Tag
	stride    int
	byteTally int
}

// pushScope records that the parent scope (if any) just consumed one
// value slot — the container being opened — then pushes the new scope.
func (e *Encoder) pushScope(s scope) {
	e.recordValueAppended()
	e.scopes = append(e.scopes, s)
}

// End closes the innermost open scope, back-patching its count (and, for
// Array, having already validated the byte tally on every Push).
//
// End panics if there is no open scope, or if the scope is a Map with a
// dangling Key (a Key call not followed by a value).
func (e *Encoder) End() *Encoder {
	e.checkNotDone()

	if len(e.scopes) == 0 {
		violate("End called with no open scope")
	}

	top := &e.scopes[len(e.scopes)-1]

	if top.kind == scopeKindMap && top.mapState == mapAwaitingValue {
		violate("map scope closed with a dangling key")
	}

	if top.count > wire.MaxSize {
		violate("%s scope count %d exceeds the %d-entry wire limit", scopeKindName(top.kind), top.count, wire.MaxSize)
	}

	wire.PutU16(e.buf.B[top.countOffset:], uint16(top.count))

	e.scopes = e.scopes[:len(e.scopes)-1]

	return e
}

func scopeKindName(k scopeKind) string {
	switch k {
	case scopeKindList:
		return "list"
	case scopeKindMap:
		return "map"
	case scopeKindArray:
		return "array"
	default:
		return "unknown"
	}
}
