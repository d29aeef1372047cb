package peek

// PartitionIterator produces Partitions, in order, from a PartitionLoader
type PartitionIterator interface {
	HasNextPartition() bool
	NextPartition() (OperablePartition, error)
	OnEnd(onEnd func()) // OnEnd registers a listener which fires when this iterator runs out of Partitions or is closed
	Close() error       // Close stops iteration early, releasing any underlying resources
}
