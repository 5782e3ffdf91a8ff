package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses an encoded neopack payload with S2, a Snappy
// extension that favors compression/decompression speed over ratio —
// the fastest of the three real codecs this package offers.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses an encoded neopack payload using S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores an S2-compressed neopack payload to its original
// encoded bytes.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
