// Package compress provides compression and decompression codecs for encoded neopack payloads.
//
// neopack itself never compresses container internals: every List, Map, and
// Array is encoded byte-for-byte as described by the wire format. Compression
// is an optional outer layer applied to the full output of Encoder.Finish,
// useful when the encoded payload crosses a network or lands on disk.
//
// # Overview
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// and four built-in codecs, selected by CompressionType:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// # Supported Algorithms
//
// **NoOp Compression** (CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)   // returns data unchanged
//	original, _ := codec.Decompress(compressed)
//
// Use when the payload is small, already compressed (e.g. already zstd'd
// blobs in a Bytes field), or CPU matters more than size.
//
// **Zstandard (Zstd)** (CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// Best compression ratio of the four, moderate speed. Good default for
// payloads headed to cold storage or across a constrained link.
//
// **S2 (Snappy Alternative)** (CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// Fast in both directions with a modest compression ratio. Good default for
// latency-sensitive request/response paths.
//
// **LZ4** (CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// Fastest decompression of the four. Good fit when payloads are written once
// and read many times.
//
// # Memory Management
//
// The LZ4 codec pools its lz4.Compressor, and the pure-Go Zstd codec pools
// its encoders and decoders (sync.Pool), to minimize allocations across
// repeated Compress/Decompress calls; the S2 and NoOp codecs keep no pooled
// state. Returned slices are newly allocated and owned by the caller, except
// for NoOpCompressor, which returns its input slice; input slices are never
// modified.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
//
// # Error Handling
//
// Compress errors are rare (allocation failure, or an algorithm's own input
// limits). Decompress errors are more common: corrupted input, a format the
// codec doesn't recognize, or a decompressed size that exceeds the codec's
// safety cap. Errors are wrapped with context via fmt.Errorf's %w.
//
// # Advanced Usage
//
// To plug in a different algorithm, implement Compressor/Decompressor:
//
//	type MyCodec struct{}
//
//	func (c *MyCodec) Compress(data []byte) ([]byte, error) {
//	    return compressedData, nil
//	}
//
//	func (c *MyCodec) Decompress(data []byte) ([]byte, error) {
//	    return originalData, nil
//	}
package compress
