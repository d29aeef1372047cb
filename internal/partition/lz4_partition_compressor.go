package partition

import (
	"bytes"
	"io"
	"sync"

	"github.com/go-sif/peek"
	"github.com/pierrec/lz4"
)

// LZ4PartitionCompressor is a partition compressor which uses the lz4 compression algorithm
type LZ4PartitionCompressor struct {
	lock               sync.Mutex
	compressor         *lz4.Writer
	decompressor       *lz4.Reader
	reusableReadBuffer *bytes.Buffer
}

// NewLZ4PartitionCompressor instantiates a new LZ4PartitionCompressor
func NewLZ4PartitionCompressor() peek.PartitionCompressor {
	return &LZ4PartitionCompressor{
		compressor:         lz4.NewWriter(new(bytes.Buffer)),
		decompressor:       lz4.NewReader(new(bytes.Buffer)),
		reusableReadBuffer: new(bytes.Buffer),
	}
}

// Compress serializes and compresses partition data to a write stream
func (lz4pc *LZ4PartitionCompressor) Compress(w io.Writer, part peek.OperablePartition) error {
	data, err := ToBytes(part)
	if err != nil {
		return err
	}
	lz4pc.lock.Lock()
	defer lz4pc.lock.Unlock()
	lz4pc.compressor.Reset(w)
	if _, err = lz4pc.compressor.Write(data); err != nil {
		return err
	}
	return lz4pc.compressor.Close()
}

// Decompress decompresses and deserializes partition data from a read stream
func (lz4pc *LZ4PartitionCompressor) Decompress(r io.Reader, schema peek.Schema) (peek.OperablePartition, error) {
	lz4pc.lock.Lock()
	defer lz4pc.lock.Unlock()
	lz4pc.decompressor.Reset(r)
	lz4pc.reusableReadBuffer.Reset()
	if _, err := lz4pc.reusableReadBuffer.ReadFrom(lz4pc.decompressor); err != nil {
		return nil, err
	}
	return FromBytes(lz4pc.reusableReadBuffer.Bytes(), schema)
}

// Destroy does nothing for LZ4PartitionCompressor
func (lz4pc *LZ4PartitionCompressor) Destroy() {}
