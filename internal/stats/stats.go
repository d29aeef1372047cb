package stats

import (
	"sync"
	"time"
)

const statisticRollingWindows = 5

// RunStatistics contains statistics about a job run within a Session.
// It is safe for concurrent use by workers.
type RunStatistics struct {
	lock                        sync.Mutex
	started                     bool
	finished                    bool
	startTime                   time.Time
	totalRuntime                time.Duration
	rowsProcessed               int64
	partitionsProcessed         int64
	recentPartitionRuntimes     []time.Duration // for rolling average of recent partition processing times
	recentPartitionRuntimesHead int
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.recentPartitionRuntimes = make([]time.Duration, statisticRollingWindows)
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.totalRuntime = time.Since(rs.startTime)
	rs.finished = true
}

// EndPartition tracks the end of the processing of a partition which began at start
func (rs *RunStatistics) EndPartition(start time.Time, numRows int) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if !rs.started {
		return
	}
	rs.recentPartitionRuntimes[rs.recentPartitionRuntimesHead] = time.Since(start)
	rs.recentPartitionRuntimesHead = (rs.recentPartitionRuntimesHead + 1) % len(rs.recentPartitionRuntimes)
	rs.rowsProcessed += int64(numRows)
	rs.partitionsProcessed++
}

// GetStartTime returns the start time of the job
func (rs *RunStatistics) GetStartTime() time.Time {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.startTime
}

// GetRuntime returns the running time of the job
func (rs *RunStatistics) GetRuntime() time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if rs.finished {
		return rs.totalRuntime
	}
	if !rs.started {
		return 0
	}
	return time.Since(rs.startTime)
}

// GetNumRowsProcessed returns the number of Rows which have been processed so far
func (rs *RunStatistics) GetNumRowsProcessed() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.rowsProcessed
}

// GetNumPartitionsProcessed returns the number of Partitions which have been processed so far
func (rs *RunStatistics) GetNumPartitionsProcessed() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.partitionsProcessed
}

// GetCurrentPartitionProcessingTime returns a rolling average of partition processing time
func (rs *RunStatistics) GetCurrentPartitionProcessingTime() time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	var total time.Duration
	for _, d := range rs.recentPartitionRuntimes {
		total += d
	}
	return total / statisticRollingWindows
}
