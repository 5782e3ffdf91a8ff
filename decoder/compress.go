package decoder

import (
	"fmt"

	"github.com/neopack-go/neopack/compress"
)

// NewCompressedReader reverses Encoder.FinishCompressed: it decompresses
// data with the codec for compressionType and returns a Reader positioned
// at the start of the decompressed bytes. compressionType must match what
// the producer passed to FinishCompressed — neither the compressed buffer
// nor the decompressed neopack payload identifies which codec was used.
func NewCompressedReader(data []byte, compressionType compress.CompressionType) (*Reader, error) {
	codec, err := compress.CreateCodec(compressionType, "decoder input")
	if err != nil {
		return nil, fmt.Errorf("neopack: NewCompressedReader: %w", err)
	}

	decompressed, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("neopack: NewCompressedReader: %w", err)
	}

	return NewReader(decompressed), nil
}
