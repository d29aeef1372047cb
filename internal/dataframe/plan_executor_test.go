package dataframe_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/datasource/memory"
	"github.com/go-sif/peek/datasource/parser/jsonl"
	"github.com/go-sif/peek/internal/dataframe"
	"github.com/go-sif/peek/internal/partition"
	"github.com/go-sif/peek/internal/stats"
	ops "github.com/go-sif/peek/operations/transform"
	util "github.com/go-sif/peek/operations/util"
	"github.com/go-sif/peek/schema"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// createTestDataFrame produces numBuffers buffers of rowsPerBuffer rows each,
// where col1 counts up across all buffers
func createTestDataFrame(numBuffers int, rowsPerBuffer int) peek.DataFrame {
	data := make([][]byte, numBuffers)
	for b := 0; b < numBuffers; b++ {
		lines := make([]string, rowsPerBuffer)
		for i := 0; i < rowsPerBuffer; i++ {
			lines[i] = fmt.Sprintf("{\"col1\": %d, \"col2\": \"abc\"}", b*rowsPerBuffer+i)
		}
		data[b] = []byte(strings.Join(lines, "\n"))
	}
	schema := schema.CreateSchema()
	schema.CreateColumn("col1", &peek.Int64ColumnType{})
	schema.CreateColumn("col2", &peek.StringColumnType{})
	parser := jsonl.CreateParser(&jsonl.ParserConf{
		PartitionSize: 5,
	})
	return memory.CreateDataFrame(data, parser, schema)
}

func execute(t *testing.T, frame peek.DataFrame, conf *dataframe.ExecutorConfig) ([]peek.CollectedPartition, error) {
	plan, err := dataframe.CreatePlan(frame)
	require.Nil(t, err)
	if conf == nil {
		conf = &dataframe.ExecutorConfig{TempDir: t.TempDir()}
	}
	return dataframe.Execute(context.Background(), plan, conf)
}

func collectCol1(t *testing.T, parts []peek.CollectedPartition) []int64 {
	result := []int64{}
	for _, part := range parts {
		err := part.ForEachRow(func(row peek.Row) error {
			v, err := row.GetInt64("col1")
			if err != nil {
				return err
			}
			result = append(result, v)
			return nil
		})
		require.Nil(t, err)
	}
	return result
}

func TestExecutePreservesSourceOrder(t *testing.T) {
	frame := createTestDataFrame(4, 12)
	parts, err := execute(t, frame, &dataframe.ExecutorConfig{TempDir: t.TempDir(), NumWorkers: 3})
	require.Nil(t, err)
	col1 := collectCol1(t, parts)
	require.Len(t, col1, 48)
	for i, v := range col1 {
		require.Equal(t, int64(i), v)
	}
}

func TestExecuteWithLimit(t *testing.T) {
	frame, err := createTestDataFrame(3, 10).To(util.Collect(12))
	require.Nil(t, err)
	parts, err := execute(t, frame, nil)
	require.Nil(t, err)
	col1 := collectCol1(t, parts)
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, col1)

	frame, err = createTestDataFrame(2, 10).To(util.Collect(0))
	require.Nil(t, err)
	parts, err = execute(t, frame, nil)
	require.Nil(t, err)
	require.Len(t, parts, 0)
}

func TestExecuteDiscardsEmptyPartitions(t *testing.T) {
	frame, err := createTestDataFrame(2, 10).To(
		ops.Filter(func(row peek.Row) (bool, error) {
			v, err := row.GetInt64("col1")
			return v >= 15, err
		}),
	)
	require.Nil(t, err)
	parts, err := execute(t, frame, nil)
	require.Nil(t, err)
	require.Len(t, parts, 1)
	require.Equal(t, []int64{15, 16, 17, 18, 19}, collectCol1(t, parts))
}

func TestExecuteSelectAndRename(t *testing.T) {
	frame, err := createTestDataFrame(1, 3).To(
		ops.Select("col2", "col1"),
		ops.RenameColumn("col2", "name"),
		ops.Map(func(row peek.Row) error {
			name, err := row.GetString("name")
			if err != nil {
				return err
			}
			return row.SetString("name", strings.ToUpper(name))
		}),
	)
	require.Nil(t, err)
	require.Equal(t, []string{"name", "col1"}, frame.GetSchema().ColumnNames())
	parts, err := execute(t, frame, nil)
	require.Nil(t, err)
	require.Len(t, parts, 1)
	name, err := parts[0].GetRow(2).GetString("name")
	require.Nil(t, err)
	require.Equal(t, "ABC", name)
	require.Equal(t, []string{"name", "col1"}, parts[0].GetSchema().ColumnNames())
}

func TestExecuteSpillsToDisk(t *testing.T) {
	frame := createTestDataFrame(2, 40)
	runStats := &stats.RunStatistics{}
	parts, err := execute(t, frame, &dataframe.ExecutorConfig{
		TempDir:               t.TempDir(),
		NumWorkers:            1,
		NumInMemoryPartitions: 5,
		CompressedFraction:    0.4,
		NewCompressor:         partition.NewZstdPartitionCompressor,
		Stats:                 runStats,
	})
	require.Nil(t, err)
	require.Len(t, parts, 16)
	require.Len(t, collectCol1(t, parts), 80)
	require.Equal(t, int64(80), runStats.GetNumRowsProcessed())
	require.Equal(t, int64(16), runStats.GetNumPartitionsProcessed())
}

func TestMapErrors(t *testing.T) {
	// error on all odd numbers
	frame, err := createTestDataFrame(2, 10).To(
		ops.Map(func(row peek.Row) error {
			v, err := row.GetInt64("col1")
			if err != nil {
				return err
			}
			if v%2 == 1 {
				return fmt.Errorf("odd number %d", v)
			}
			return nil
		}),
	)
	require.Nil(t, err)
	_, err = execute(t, frame, nil)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "odd number")
}

func TestMapPanics(t *testing.T) {
	frame, err := createTestDataFrame(1, 2).To(
		ops.Map(func(row peek.Row) error {
			panic("boom")
		}),
	)
	require.Nil(t, err)
	_, err = execute(t, frame, nil)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestCreatePlanErrors(t *testing.T) {
	_, err := createTestDataFrame(1, 1).To(ops.Select("missing"))
	require.NotNil(t, err)

	frame, err := createTestDataFrame(1, 1).To(util.Collect(1), ops.Select("col1"))
	require.Nil(t, err)
	_, err = dataframe.CreatePlan(frame)
	require.NotNil(t, err)
}

func TestExecuteCancelled(t *testing.T) {
	plan, err := dataframe.CreatePlan(createTestDataFrame(2, 10))
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dataframe.Execute(ctx, plan, &dataframe.ExecutorConfig{TempDir: t.TempDir()})
	require.NotNil(t, err)
}
