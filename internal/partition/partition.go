package partition

import (
	"fmt"
	"sync/atomic"

	"github.com/go-sif/peek"
	uuid "github.com/gofrs/uuid"
)

const defaultCapacity = 16

// partitionImpl is Peek's internal implementation of Partition.
// Each row is a slice of values in schema index order, where nil
// represents a nil value.
type partitionImpl struct {
	id      string
	maxRows int
	rows    [][]interface{}
	schema  peek.Schema
}

// createPartitionImpl creates a new, empty Partition for a schema
func createPartitionImpl(maxRows int, schema peek.Schema) *partitionImpl {
	initialCapacity := defaultCapacity
	if initialCapacity > maxRows {
		initialCapacity = maxRows
	}
	id, err := newPartitionID()
	if err != nil {
		id = fallbackPartitionID()
	}
	return &partitionImpl{
		id:      id,
		maxRows: maxRows,
		rows:    make([][]interface{}, 0, initialCapacity),
		schema:  schema,
	}
}

var fallbackIDs uint64

func newPartitionID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID for Partition: %w", err)
	}
	return id.String(), nil
}

// fallbackPartitionID is unique within this process, which is all the
// partition cache needs from a key
func fallbackPartitionID() string {
	return fmt.Sprintf("partition-%d", atomic.AddUint64(&fallbackIDs, 1))
}

// CreatePartition creates a new, empty Partition for a schema
func CreatePartition(maxRows int, schema peek.Schema) peek.Partition {
	return createPartitionImpl(maxRows, schema)
}

// ID retrieves the ID of this Partition
func (p *partitionImpl) ID() string {
	return p.id
}

// GetMaxRows retrieves the maximum number of rows in this Partition
func (p *partitionImpl) GetMaxRows() int {
	return p.maxRows
}

// GetNumRows retrieves the number of rows in this Partition
func (p *partitionImpl) GetNumRows() int {
	return len(p.rows)
}

// GetSchema retrieves the Schema of the rows in this Partition
func (p *partitionImpl) GetSchema() peek.Schema {
	return p.schema
}

// GetRow retrieves a specific row from this Partition
func (p *partitionImpl) GetRow(rowNum int) peek.Row {
	return &rowImpl{partID: p.id, values: p.rows[rowNum], schema: p.schema}
}

// String returns a short description of this Partition
func (p *partitionImpl) String() string {
	return fmt.Sprintf("Partition %s (%d/%d rows)", p.id, len(p.rows), p.maxRows)
}
