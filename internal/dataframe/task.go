package dataframe

import (
	"github.com/go-sif/peek"
)

// noOpTask is a task that does nothing
type noOpTask struct{}

// RunWorker for noOpTask does nothing
func (s *noOpTask) RunWorker(previous peek.OperablePartition) (peek.OperablePartition, error) {
	return previous, nil
}
