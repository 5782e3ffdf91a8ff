//go:build nobuild

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses an encoded neopack payload using cgo-accelerated
// Zstandard, via gozstd's libzstd bindings rather than the pure-Go
// implementation in zstd_pure.go.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores a Zstd-compressed neopack payload to its original
// encoded bytes, via gozstd's cgo bindings.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
