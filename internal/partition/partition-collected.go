package partition

import "github.com/go-sif/peek"

// CreateCollectedPartition turns an OperablePartition built by this package into a CollectedPartition
func CreateCollectedPartition(part peek.OperablePartition) peek.CollectedPartition {
	if p, ok := part.(*partitionImpl); ok {
		return p
	}
	result := createPartitionImpl(part.GetMaxRows(), part.GetSchema())
	result.id = part.ID()
	for i := 0; i < part.GetNumRows(); i++ {
		result.rows = append(result.rows, part.GetRow(i).(*rowImpl).values)
	}
	return result
}

// ForEachRow iterates over Rows in a Partition
func (p *partitionImpl) ForEachRow(fn peek.MapOperation) error {
	for i := 0; i < len(p.rows); i++ {
		if err := fn(p.GetRow(i)); err != nil {
			return err
		}
	}
	return nil
}
