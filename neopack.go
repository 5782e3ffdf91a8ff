// Package neopack re-exports the encoder and decoder packages under one
// import path and adds a handful of conveniences that sit above the wire
// format itself: building a whole value in one call, and fingerprinting an
// encoded payload for caching or deduplication.
package neopack

import (
	"github.com/cespare/xxhash/v2"

	"github.com/neopack-go/neopack/compress"
	"github.com/neopack-go/neopack/decoder"
	"github.com/neopack-go/neopack/encoder"
	"github.com/neopack-go/neopack/wire"
)

// Re-exported so callers can depend on a single package for the common
// path, without reaching into encoder/decoder/wire/compress directly.
type (
	Encoder         = encoder.Encoder
	Reader          = decoder.Reader
	Value           = decoder.Value
	ListReader      = decoder.ListReader
	MapReader       = decoder.MapReader
	ArrayReader     = decoder.ArrayReader
	Tag             = wire.Tag
	CompressionType = compress.CompressionType
)

const (
	CompressionNone = compress.CompressionNone
	CompressionZstd = compress.CompressionZstd
	CompressionS2   = compress.CompressionS2
	CompressionLZ4  = compress.CompressionLZ4
)

const (
	TagBool   = wire.TagBool
	TagS8     = wire.TagS8
	TagU8     = wire.TagU8
	TagS16    = wire.TagS16
	TagU16    = wire.TagU16
	TagS32    = wire.TagS32
	TagU32    = wire.TagU32
	TagS64    = wire.TagS64
	TagU64    = wire.TagU64
	TagF32    = wire.TagF32
	TagF64    = wire.TagF64
	TagString = wire.TagString
	TagBytes  = wire.TagBytes
	TagStruct = wire.TagStruct
	TagList   = wire.TagList
	TagMap    = wire.TagMap
	TagArray  = wire.TagArray

	MaxSize = wire.MaxSize
)

// NewEncoder returns an Encoder ready to accept values.
func NewEncoder() *Encoder {
	return encoder.New()
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return decoder.NewReader(buf)
}

// Build runs fn against a fresh Encoder and returns the finished buffer.
// It is a convenience for the common case of encoding one value and
// immediately extracting the bytes:
//
//	buf, err := neopack.Build(func(e *neopack.Encoder) {
//		e.Map().Key("name").String("Alice").Key("age").Uint32(30).End()
//	})
func Build(fn func(e *Encoder)) ([]byte, error) {
	e := NewEncoder()
	fn(e)

	return e.Finish()
}

// BuildCompressed runs fn against a fresh Encoder, exactly as Build does,
// then compresses the finished buffer with the codec for compressionType.
// Decode the result with NewCompressedReader, passing the same
// compressionType.
func BuildCompressed(compressionType CompressionType, fn func(e *Encoder)) ([]byte, error) {
	e := NewEncoder()
	fn(e)

	return e.FinishCompressed(compressionType)
}

// NewCompressedReader reverses BuildCompressed: it decompresses data with
// the codec for compressionType and returns a Reader over the result.
func NewCompressedReader(data []byte, compressionType CompressionType) (*Reader, error) {
	return decoder.NewCompressedReader(data, compressionType)
}

// Fingerprint returns the xxHash64 digest of an encoded neopack payload.
// It is meant for content-addressed caching or change detection on wire
// output — e.g. deciding whether a freshly encoded buffer matches one
// already stored — and carries no integrity guarantee against a
// malicious producer, which the format explicitly leaves out of scope.
func Fingerprint(encoded []byte) uint64 {
	return xxhash.Sum64(encoded)
}
