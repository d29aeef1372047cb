package transform

import (
	"github.com/go-sif/peek"
	iutil "github.com/go-sif/peek/internal/util"
)

type filterTask struct {
	fn peek.FilterOperation
}

func (s *filterTask) RunWorker(previous peek.OperablePartition) (peek.OperablePartition, error) {
	return previous.FilterRows(s.fn)
}

// Filter filters Rows out of a Partition, creating a new one
func Filter(fn peek.FilterOperation) peek.DataFrameOperation {
	return func(d peek.DataFrame) (*peek.DataFrameOperationResult, error) {
		return &peek.DataFrameOperationResult{
			Task:       &filterTask{fn: iutil.SafeFilterOperation(fn)},
			TaskType:   peek.FilterTaskType,
			DataSchema: d.GetSchema().Clone(),
		}, nil
	}
}
