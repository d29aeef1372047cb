package peek

import "io"

// A PartitionCompressor serializes and compresses partition data (and the inverse)
type PartitionCompressor interface {
	Compress(w io.Writer, part OperablePartition) error                 // Compress serializes and compresses partition data to a write stream
	Decompress(r io.Reader, schema Schema) (OperablePartition, error) // Decompress decompresses and deserializes partition data from a read stream
	Destroy()                                                         // Destroy cleans up anything relevant when the compressor is no longer needed
}
