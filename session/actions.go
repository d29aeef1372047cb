package session

import (
	"context"
	"fmt"
	"io"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/display"
	"github.com/go-sif/peek/internal/dataframe"
	"github.com/go-sif/peek/internal/stats"
	"github.com/go-sif/peek/operations/util"
)

// Collect runs a DataFrame, returning its Partitions in source order. At most limit
// Rows are collected, unless limit is negative.
func (s *Session) Collect(ctx context.Context, df peek.DataFrame, limit int64) ([]peek.CollectedPartition, error) {
	if s.isStopped() {
		return nil, fmt.Errorf("Session %s is stopped", s.id)
	}
	frame, err := df.To(util.Collect(limit))
	if err != nil {
		return nil, err
	}
	plan, err := dataframe.CreatePlan(frame)
	if err != nil {
		return nil, err
	}
	newCompressor, err := compressorFactory(s.opts.Compression)
	if err != nil {
		return nil, err
	}
	runStats := &stats.RunStatistics{}
	s.lock.Lock()
	s.lastStats = runStats
	s.lock.Unlock()
	result, err := dataframe.Execute(ctx, plan, &dataframe.ExecutorConfig{
		NumWorkers:            s.opts.NumWorkers,
		TempDir:               s.scratchDir,
		NumInMemoryPartitions: s.opts.NumInMemoryPartitions,
		CompressedFraction:    s.opts.CompressedFraction,
		NewCompressor:         newCompressor,
		Stats:                 runStats,
		Logger:                s.opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	s.opts.Logger.Debugf("Session %s processed %d rows in %d partitions in %s",
		s.id, runStats.GetNumRowsProcessed(), runStats.GetNumPartitionsProcessed(), runStats.GetRuntime())
	return result, nil
}

// Take returns at most the first n Rows of a DataFrame
func (s *Session) Take(ctx context.Context, df peek.DataFrame, n int) ([]peek.Row, error) {
	if n < 0 {
		n = 0
	}
	parts, err := s.Collect(ctx, df, int64(n))
	if err != nil {
		return nil, err
	}
	rows := make([]peek.Row, 0, n)
	for _, part := range parts {
		for i := 0; i < part.GetNumRows(); i++ {
			rows = append(rows, part.GetRow(i))
		}
	}
	return rows, nil
}

// Count returns the number of Rows in a DataFrame
func (s *Session) Count(ctx context.Context, df peek.DataFrame) (int64, error) {
	parts, err := s.Collect(ctx, df, -1)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, part := range parts {
		count += int64(part.GetNumRows())
	}
	return count, nil
}

// Show writes the first numRows Rows of a DataFrame to w as a table.
// Cells longer than truncate characters are shortened, unless truncate is 0.
func (s *Session) Show(ctx context.Context, w io.Writer, df peek.DataFrame, numRows int, truncate int) error {
	if numRows < 0 {
		numRows = 0
	}
	rows, err := s.Take(ctx, df, numRows+1)
	if err != nil {
		return err
	}
	hasMore := len(rows) > numRows
	return display.Table(w, df.GetSchema(), rows, numRows, hasMore, truncate)
}

// PrintSchema writes the Schema of a DataFrame to w as a tree
func (s *Session) PrintSchema(w io.Writer, df peek.DataFrame) error {
	return display.SchemaTree(w, df.GetSchema())
}
