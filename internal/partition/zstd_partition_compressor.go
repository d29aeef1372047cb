package partition

import (
	"io"
	"io/ioutil"
	"log"

	"github.com/go-sif/peek"
	"github.com/klauspost/compress/zstd"
)

// ZstdPartitionCompressor is a partition compressor which uses the zstd compression algorithm.
// It is safe for concurrent use.
type ZstdPartitionCompressor struct {
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// NewZstdPartitionCompressor instantiates a new ZstdPartitionCompressor
func NewZstdPartitionCompressor() peek.PartitionCompressor {
	compressor, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		log.Fatalf("Unable to initialize compressor: %v", err)
	}
	decompressor, err := zstd.NewReader(nil)
	if err != nil {
		log.Fatalf("Unable to initialize decompressor: %v", err)
	}
	return &ZstdPartitionCompressor{compressor: compressor, decompressor: decompressor}
}

// Compress serializes and compresses partition data to a write stream
func (zpc *ZstdPartitionCompressor) Compress(w io.Writer, part peek.OperablePartition) error {
	data, err := ToBytes(part)
	if err != nil {
		return err
	}
	_, err = w.Write(zpc.compressor.EncodeAll(data, nil))
	return err
}

// Decompress decompresses and deserializes partition data from a read stream
func (zpc *ZstdPartitionCompressor) Decompress(r io.Reader, schema peek.Schema) (peek.OperablePartition, error) {
	compressed, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data, err := zpc.decompressor.DecodeAll(compressed, nil)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, schema)
}

// Destroy releases the encoder and decoder
func (zpc *ZstdPartitionCompressor) Destroy() {
	zpc.compressor.Close()
	zpc.decompressor.Close()
}
