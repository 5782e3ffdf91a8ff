// Package wire defines the neopack wire format: the tag byte vocabulary,
// fixed little-endian primitive encoding, and the error taxonomy shared by
// the encoder and decoder packages.
//
// Every value on the wire starts with a single Tag byte. Scalars are
// followed immediately by their fixed-width payload; String, Bytes, and
// Struct are followed by a u16 length prefix and that many raw bytes; List,
// Map, and Array are followed by their own internal structure, built by the
// encoder package and walked by the decoder package. All multi-byte
// integers — length prefixes, counts, strides, and scalar payloads — are
// little-endian, and every count or length on the wire fits in 16 bits
// (MaxSize).
package wire

// Tag identifies the type of the value that follows it on the wire.
type Tag byte

// Tag values, per the neopack wire format. Values 0x0C-0x0F and 0x13-0x1F
// and 0x22 and 0x24-0xFF are reserved and never appear on a valid wire.
const (
	TagBool Tag = 0x01

	TagS8  Tag = 0x02
	TagU8  Tag = 0x03
	TagS16 Tag = 0x04
	TagU16 Tag = 0x05
	TagS32 Tag = 0x06
	TagU32 Tag = 0x07
	TagS64 Tag = 0x08
	TagU64 Tag = 0x09

	TagF32 Tag = 0x0A
	TagF64 Tag = 0x0B

	TagString Tag = 0x10
	TagBytes  Tag = 0x11
	TagStruct Tag = 0x12

	TagList  Tag = 0x20
	TagMap   Tag = 0x21
	TagArray Tag = 0x23
)

// MaxSize is the largest count, length, or stride representable on the
// wire: every such field is a u16.
const MaxSize = 0xFFFF

// IsScalar reports whether the tag identifies a fixed-width scalar
// (Bool, an integer type, or a float type).
func (t Tag) IsScalar() bool {
	switch t {
	case TagBool, TagS8, TagU8, TagS16, TagU16, TagS32, TagU32, TagS64, TagU64, TagF32, TagF64:
		return true
	default:
		return false
	}
}

// IsBlob reports whether the tag identifies a length-prefixed byte payload
// (String, Bytes, or Struct).
func (t Tag) IsBlob() bool {
	switch t {
	case TagString, TagBytes, TagStruct:
		return true
	default:
		return false
	}
}

// IsContainer reports whether the tag identifies a List, Map, or Array.
func (t Tag) IsContainer() bool {
	switch t {
	case TagList, TagMap, TagArray:
		return true
	default:
		return false
	}
}

// Size returns the fixed payload size in bytes for a scalar tag, and ok as
// false for any non-scalar tag.
func (t Tag) Size() (size int, ok bool) {
	switch t {
	case TagBool, TagS8, TagU8:
		return 1, true
	case TagS16, TagU16:
		return 2, true
	case TagS32, TagU32, TagF32:
		return 4, true
	case TagS64, TagU64, TagF64:
		return 8, true
	default:
		return 0, false
	}
}

// String returns the human-readable name of the tag, primarily for use in
// error messages.
func (t Tag) String() string {
	switch t {
	case TagBool:
		return "Bool"
	case TagS8:
		return "S8"
	case TagU8:
		return "U8"
	case TagS16:
		return "S16"
	case TagU16:
		return "U16"
	case TagS32:
		return "S32"
	case TagU32:
		return "U32"
	case TagS64:
		return "S64"
	case TagU64:
		return "U64"
	case TagF32:
		return "F32"
	case TagF64:
		return "F64"
	case TagString:
		return "String"
	case TagBytes:
		return "Bytes"
	case TagStruct:
		return "Struct"
	case TagList:
		return "List"
	case TagMap:
		return "Map"
	case TagArray:
		return "Array"
	default:
		return "Unknown"
	}
}
