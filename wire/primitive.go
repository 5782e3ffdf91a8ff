package wire

import (
	"math"

	"github.com/neopack-go/neopack/endian"
)

var le = endian.GetLittleEndianEngine()

// AppendTag appends a single tag byte to buf.
func AppendTag(buf []byte, tag Tag) []byte {
	return append(buf, byte(tag))
}

// AppendBool appends a Bool payload (one byte, 0x00 or 0x01) to buf.
func AppendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}

	return append(buf, 0)
}

// AppendS8 appends an S8 payload to buf.
func AppendS8(buf []byte, v int8) []byte {
	return append(buf, byte(v))
}

// AppendU8 appends a U8 payload to buf.
func AppendU8(buf []byte, v uint8) []byte {
	return append(buf, v)
}

// AppendS16 appends an S16 payload (little-endian) to buf.
func AppendS16(buf []byte, v int16) []byte {
	return le.AppendUint16(buf, uint16(v))
}

// AppendU16 appends a U16 payload (little-endian) to buf.
func AppendU16(buf []byte, v uint16) []byte {
	return le.AppendUint16(buf, v)
}

// AppendS32 appends an S32 payload (little-endian) to buf.
func AppendS32(buf []byte, v int32) []byte {
	return le.AppendUint32(buf, uint32(v))
}

// AppendU32 appends a U32 payload (little-endian) to buf.
func AppendU32(buf []byte, v uint32) []byte {
	return le.AppendUint32(buf, v)
}

// AppendS64 appends an S64 payload (little-endian) to buf.
func AppendS64(buf []byte, v int64) []byte {
	return le.AppendUint64(buf, uint64(v))
}

// AppendU64 appends a U64 payload (little-endian) to buf.
func AppendU64(buf []byte, v uint64) []byte {
	return le.AppendUint64(buf, v)
}

// AppendF32 appends an F32 payload (little-endian, IEEE-754 bits) to buf.
func AppendF32(buf []byte, v float32) []byte {
	return le.AppendUint32(buf, math.Float32bits(v))
}

// AppendF64 appends an F64 payload (little-endian, IEEE-754 bits) to buf.
func AppendF64(buf []byte, v float64) []byte {
	return le.AppendUint64(buf, math.Float64bits(v))
}

// AppendU16LenPrefix appends a u16 length prefix (little-endian) to buf.
// Callers must ensure n <= MaxSize before calling.
func AppendU16LenPrefix(buf []byte, n int) []byte {
	return le.AppendUint16(buf, uint16(n))
}

// PutU16 overwrites the two bytes at the front of dst with v, little-endian,
// without growing dst. Used by the encoder to back-patch a count or length
// field written earlier as a placeholder.
func PutU16(dst []byte, v uint16) {
	le.PutUint16(dst, v)
}

// The Read* helpers below assume the caller has already bounds-checked buf
// to be at least as long as the value being read; they never panic on a
// slice of exactly the right length because callers always bounds-check via
// Reader.need before calling them.

// ReadBool reads a Bool payload from the front of buf.
func ReadBool(buf []byte) bool {
	return buf[0] != 0
}

// ReadS8 reads an S8 payload from the front of buf.
func ReadS8(buf []byte) int8 {
	return int8(buf[0])
}

// ReadU8 reads a U8 payload from the front of buf.
func ReadU8(buf []byte) uint8 {
	return buf[0]
}

// ReadS16 reads an S16 payload (little-endian) from the front of buf.
func ReadS16(buf []byte) int16 {
	return int16(le.Uint16(buf))
}

// ReadU16 reads a U16 payload (little-endian) from the front of buf.
func ReadU16(buf []byte) uint16 {
	return le.Uint16(buf)
}

// ReadS32 reads an S32 payload (little-endian) from the front of buf.
func ReadS32(buf []byte) int32 {
	return int32(le.Uint32(buf))
}

// ReadU32 reads a U32 payload (little-endian) from the front of buf.
func ReadU32(buf []byte) uint32 {
	return le.Uint32(buf)
}

// ReadS64 reads an S64 payload (little-endian) from the front of buf.
func ReadS64(buf []byte) int64 {
	return int64(le.Uint64(buf))
}

// ReadU64 reads a U64 payload (little-endian) from the front of buf.
func ReadU64(buf []byte) uint64 {
	return le.Uint64(buf)
}

// ReadF32 reads an F32 payload (little-endian, IEEE-754 bits) from the
// front of buf.
func ReadF32(buf []byte) float32 {
	return math.Float32frombits(le.Uint32(buf))
}

// ReadF64 reads an F64 payload (little-endian, IEEE-754 bits) from the
// front of buf.
func ReadF64(buf []byte) float64 {
	return math.Float64frombits(le.Uint64(buf))
}

// ReadU16LenPrefix reads a u16 length prefix (little-endian) from the front
// of buf.
func ReadU16LenPrefix(buf []byte) int {
	return int(le.Uint16(buf))
}
