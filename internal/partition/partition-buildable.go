package partition

import (
	"github.com/go-sif/peek"
	errors "github.com/go-sif/peek/errors"
)

// CreateBuildablePartition creates a new Partition which can be populated by a Parser
func CreateBuildablePartition(maxRows int, schema peek.Schema) peek.BuildablePartition {
	return createPartitionImpl(maxRows, schema)
}

// AppendEmptyRow adds an all-nil Row to the end of this Partition, if it isn't full
func (p *partitionImpl) AppendEmptyRow() (peek.Row, error) {
	if len(p.rows) >= p.maxRows {
		return nil, errors.PartitionFullError{}
	}
	p.rows = append(p.rows, make([]interface{}, p.schema.NumColumns()))
	return p.GetRow(len(p.rows) - 1), nil
}

// appendValues adds a Row of values to the end of this Partition, if it isn't full and the row fits the schema
func (p *partitionImpl) appendValues(values []interface{}) error {
	if len(p.rows) >= p.maxRows {
		return errors.PartitionFullError{}
	}
	if len(values) != p.schema.NumColumns() {
		return errors.IncompatibleRowError{}
	}
	p.rows = append(p.rows, values)
	return nil
}
