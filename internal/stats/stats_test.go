package stats

import (
	"testing"
	"time"

	"github.com/go-sif/peek"
	"github.com/stretchr/testify/require"
)

func TestRunStatistics(t *testing.T) {
	var rs peek.RuntimeStatistics = &RunStatistics{}
	stats := rs.(*RunStatistics)
	require.Equal(t, time.Duration(0), stats.GetRuntime())
	stats.EndPartition(time.Now(), 10) // ignored before Start
	require.Equal(t, int64(0), stats.GetNumRowsProcessed())
	stats.Start()
	start := time.Now()
	stats.EndPartition(start, 10)
	stats.EndPartition(start, 5)
	stats.Finish()
	require.Equal(t, int64(15), stats.GetNumRowsProcessed())
	require.Equal(t, int64(2), stats.GetNumPartitionsProcessed())
	runtime := stats.GetRuntime()
	require.Equal(t, runtime, stats.GetRuntime())
	require.False(t, stats.GetStartTime().IsZero())
	require.True(t, stats.GetCurrentPartitionProcessingTime() >= 0)
}
