package partition

import (
	"github.com/go-sif/peek"
)

// CreateOperablePartition creates a new, empty Partition which can be operated on
func CreateOperablePartition(maxRows int, schema peek.Schema) peek.OperablePartition {
	return createPartitionImpl(maxRows, schema)
}

// MapRows runs a MapOperation on each row in this Partition, manipulating them in-place
func (p *partitionImpl) MapRows(fn peek.MapOperation) (peek.OperablePartition, error) {
	for i := 0; i < len(p.rows); i++ {
		if err := fn(p.GetRow(i)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// FilterRows filters the Rows in the current Partition, creating a new one
func (p *partitionImpl) FilterRows(fn peek.FilterOperation) (peek.OperablePartition, error) {
	result := createPartitionImpl(p.maxRows, p.schema)
	for i := 0; i < len(p.rows); i++ {
		keep, err := fn(p.GetRow(i))
		if err != nil {
			return nil, err
		}
		if keep {
			result.rows = append(result.rows, p.rows[i])
		}
	}
	return result, nil
}

// Project produces a new Partition containing the columns of newSchema, looked up by name in the current one
func (p *partitionImpl) Project(newSchema peek.Schema) (peek.OperablePartition, error) {
	names := newSchema.ColumnNames()
	srcIdx := make([]int, len(names))
	for i, name := range names {
		col, err := p.schema.GetOffset(name)
		if err != nil {
			return nil, err
		}
		srcIdx[i] = col.Index()
	}
	result := createPartitionImpl(p.maxRows, newSchema)
	result.id = p.id
	for _, row := range p.rows {
		values := make([]interface{}, len(srcIdx))
		for i, idx := range srcIdx {
			values[i] = row[idx]
		}
		result.rows = append(result.rows, values)
	}
	return result, nil
}

// Rename swaps the Schema of this Partition for an index-compatible one
func (p *partitionImpl) Rename(newSchema peek.Schema) peek.OperablePartition {
	p.schema = newSchema
	return p
}

// Head returns a Partition containing at most the first n Rows
func (p *partitionImpl) Head(n int) peek.OperablePartition {
	if n >= len(p.rows) {
		return p
	}
	if n < 0 {
		n = 0
	}
	return &partitionImpl{id: p.id, maxRows: p.maxRows, rows: p.rows[:n], schema: p.schema}
}
