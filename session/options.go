package session

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/internal/partition"
	"github.com/go-sif/peek/logging"
)

const (
	// LZ4Compression stages partitions using LZ4
	LZ4Compression = "lz4"
	// ZstdCompression stages partitions using Zstandard
	ZstdCompression = "zstd"
)

// Options are options for a Session
type Options struct {
	AppName               string          // a name for this Session, used in logs
	NumWorkers            int             // the number of PartitionLoaders processed concurrently
	PartitionSize         int             // the default maximum number of rows per Partition, for sources which do not specify one
	TempDir               string          // location for storing temporary files (primarily swapped partitions)
	NumInMemoryPartitions int             // the number of partitions to retain in memory before swapping to disk
	CompressedFraction    float32         // the fraction of in-memory partitions which are kept compressed
	Compression           string          // the compression used for staged partitions. One of "lz4" or "zstd".
	Logger                *logging.Logger // destination for Session logs. Defaults to stderr at InfoLevel.
}

// CloneOptions makes a copy of an Options
func CloneOptions(opts *Options) *Options {
	return &Options{
		AppName:               opts.AppName,
		NumWorkers:            opts.NumWorkers,
		PartitionSize:         opts.PartitionSize,
		TempDir:               opts.TempDir,
		NumInMemoryPartitions: opts.NumInMemoryPartitions,
		CompressedFraction:    opts.CompressedFraction,
		Compression:           opts.Compression,
		Logger:                opts.Logger,
	}
}

func ensureDefaultOptionsValues(opts *Options) error {
	if len(opts.AppName) == 0 {
		opts.AppName = "peek"
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = runtime.NumCPU()
	}
	if opts.PartitionSize <= 0 {
		opts.PartitionSize = 128
	}
	if len(opts.TempDir) == 0 {
		opts.TempDir = os.TempDir()
	}
	if opts.NumInMemoryPartitions == 0 {
		opts.NumInMemoryPartitions = 100
	}
	if opts.CompressedFraction == 0 {
		opts.CompressedFraction = 0.5
	}
	if len(opts.Compression) == 0 {
		opts.Compression = LZ4Compression
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.NumInMemoryPartitions < 5 {
		return fmt.Errorf("Options.NumInMemoryPartitions must be at least 5")
	}
	if opts.CompressedFraction < 0 || opts.CompressedFraction > 1 {
		return fmt.Errorf("Options.CompressedFraction must be between 0 and 1")
	}
	if _, err := compressorFactory(opts.Compression); err != nil {
		return err
	}
	return nil
}

// compressorFactory returns a constructor for the named partition compressor
func compressorFactory(name string) (func() peek.PartitionCompressor, error) {
	switch name {
	case LZ4Compression:
		return partition.NewLZ4PartitionCompressor, nil
	case ZstdCompression:
		return partition.NewZstdPartitionCompressor, nil
	default:
		return nil, fmt.Errorf("%s is an unknown compression. Expected %s or %s", name, LZ4Compression, ZstdCompression)
	}
}
