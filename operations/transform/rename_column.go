package transform

import (
	"github.com/go-sif/peek"
)

// renameColumnTask swaps the Schema of each Partition for the renamed one
type renameColumnTask struct {
	newSchema peek.Schema
}

func (s *renameColumnTask) RunWorker(previous peek.OperablePartition) (peek.OperablePartition, error) {
	return previous.Rename(s.newSchema), nil
}

// RenameColumn renames an existing column, keeping its position
func RenameColumn(oldName string, newName string) peek.DataFrameOperation {
	return func(d peek.DataFrame) (*peek.DataFrameOperationResult, error) {
		newSchema, err := d.GetSchema().Clone().RenameColumn(oldName, newName)
		if err != nil {
			return nil, err
		}
		return &peek.DataFrameOperationResult{
			Task:       &renameColumnTask{newSchema: newSchema},
			TaskType:   peek.ProjectTaskType,
			DataSchema: newSchema,
		}, nil
	}
}
