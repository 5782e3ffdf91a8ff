// Package endian provides the byte order engine used to encode and decode
// the neopack wire format.
//
// The wire format is fixed little-endian (there is no negotiation and no
// per-value byte order flag), so this package exists only to give the
// encoder and decoder a single, fast primitive rather than scattering
// encoding/binary calls across packages. EndianEngine combines ByteOrder
// and AppendByteOrder so callers get the append-based fast path.
//
// # Performance
//
// Using EndianEngine (which includes AppendByteOrder) avoids the
// allocate-then-append pattern required by ByteOrder alone:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian satisfies it directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LE is the byte order engine used by every neopack wire primitive.
var LE EndianEngine = binary.LittleEndian

// GetLittleEndianEngine returns the little-endian engine used to encode
// and decode the neopack wire format.
func GetLittleEndianEngine() EndianEngine {
	return LE
}
