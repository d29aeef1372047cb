package transform

import (
	"fmt"

	"github.com/go-sif/peek"
)

// projectTask narrows and reorders the columns of each Partition
type projectTask struct {
	newSchema peek.Schema
}

func (s *projectTask) RunWorker(previous peek.OperablePartition) (peek.OperablePartition, error) {
	return previous.Project(s.newSchema)
}

// Select keeps only the named columns, in the given order.
// Naming a column which does not exist is an error.
func Select(colNames ...string) peek.DataFrameOperation {
	return func(d peek.DataFrame) (*peek.DataFrameOperationResult, error) {
		if len(colNames) == 0 {
			return nil, fmt.Errorf("Select() requires at least one column")
		}
		newSchema, err := d.GetSchema().Project(colNames...)
		if err != nil {
			return nil, err
		}
		return &peek.DataFrameOperationResult{
			Task:       &projectTask{newSchema: newSchema},
			TaskType:   peek.ProjectTaskType,
			DataSchema: newSchema,
		}, nil
	}
}
