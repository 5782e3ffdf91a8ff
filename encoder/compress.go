package encoder

import (
	"fmt"

	"github.com/neopack-go/neopack/compress"
)

// FinishCompressed closes out the encoder exactly as Finish does, then runs
// the finished buffer through the codec for compressionType before
// returning it. The caller is responsible for remembering which
// CompressionType it used — the compressed buffer carries no self-describing
// header, the same contract compress.Codec itself follows — and must pass
// the same value to decoder.NewCompressedReader to read it back.
func (e *Encoder) FinishCompressed(compressionType compress.CompressionType) ([]byte, error) {
	out, err := e.Finish()
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(compressionType, "encoder output")
	if err != nil {
		return nil, fmt.Errorf("neopack: FinishCompressed: %w", err)
	}

	compressed, err := codec.Compress(out)
	if err != nil {
		return nil, fmt.Errorf("neopack: FinishCompressed: %w", err)
	}

	return compressed, nil
}
