package peek

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a job run within a Session
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the job
	GetStartTime() time.Time
	// GetRuntime returns the running time of the job
	GetRuntime() time.Duration
	// GetNumRowsProcessed returns the number of Rows which have been extracted so far
	GetNumRowsProcessed() int64
	// GetNumPartitionsProcessed returns the number of Partitions which have been extracted so far
	GetNumPartitionsProcessed() int64
	// GetCurrentPartitionProcessingTime returns a rolling average of partition processing time
	GetCurrentPartitionProcessingTime() time.Duration
}
