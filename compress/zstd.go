package compress

// ZstdCompressor provides Zstandard compression for encoded neopack payloads.
//
// This compressor favors compression ratio over speed, making it a good fit
// for payloads headed to cold storage, archival, or a bandwidth-constrained
// link, where decompression happens far less often than compression.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
