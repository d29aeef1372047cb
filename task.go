package peek

// A Task is an action or transformation applied
// to Partitions of columnar data.
type Task interface {
	RunWorker(previous OperablePartition) (OperablePartition, error)
}

// A CollectionTask limits the number of Rows collected
type CollectionTask interface {
	Task
	GetCollectionLimit() int64
}
