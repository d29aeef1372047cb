package transform

import (
	"github.com/go-sif/peek"
	iutil "github.com/go-sif/peek/internal/util"
)

type mapTask struct {
	fn peek.MapOperation
}

func (s *mapTask) RunWorker(previous peek.OperablePartition) (peek.OperablePartition, error) {
	return previous.MapRows(s.fn)
}

// Map transforms a Row in-place. The Schema is unchanged.
func Map(fn peek.MapOperation) peek.DataFrameOperation {
	return func(d peek.DataFrame) (*peek.DataFrameOperationResult, error) {
		return &peek.DataFrameOperationResult{
			Task:       &mapTask{fn: iutil.SafeMapOperation(fn)},
			TaskType:   peek.MapTaskType,
			DataSchema: d.GetSchema().Clone(),
		}, nil
	}
}
