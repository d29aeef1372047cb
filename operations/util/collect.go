package util

import (
	"fmt"

	"github.com/go-sif/peek"
)

type collectTask struct {
	collectionLimit int64
}

func (s *collectTask) RunWorker(previous peek.OperablePartition) (peek.OperablePartition, error) {
	// do nothing
	return previous, nil
}

func (s *collectTask) GetCollectionLimit() int64 {
	return s.collectionLimit
}

// Collect declares that at most collectionLimit Rows should be
// returned by the Session. A negative limit collects everything.
// This also signals the end of a Dataframe's tasks.
func Collect(collectionLimit int64) peek.DataFrameOperation {
	return func(d peek.DataFrame) (*peek.DataFrameOperationResult, error) {
		if d.GetDataSource().IsStreaming() {
			return nil, fmt.Errorf("Cannot collect() from a streaming DataSource")
		}
		if collectionLimit < 0 {
			collectionLimit = -1
		}
		return &peek.DataFrameOperationResult{
			Task:       &collectTask{collectionLimit},
			TaskType:   peek.CollectTaskType,
			DataSchema: d.GetSchema().Clone(),
		}, nil
	}
}
