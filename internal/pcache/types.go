package pcache

import (
	"github.com/go-sif/peek"
)

// PartitionCache is a cache for Partitions
type PartitionCache interface {
	Destroy() error
	Add(key string, value peek.OperablePartition) error
	Get(key string) (value peek.OperablePartition, err error) // removes the partition from the cache and returns it, if present. Returns an error otherwise.
	CurrentSize() int
}
