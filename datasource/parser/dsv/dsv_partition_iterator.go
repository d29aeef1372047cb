package dsv

import (
	"encoding/csv"
	"io"
	"sync"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/datasource"
	errors "github.com/go-sif/peek/errors"
)

type dsvFilePartitionIterator struct {
	parser       *Parser
	reader       *csv.Reader
	hasNext      bool
	source       peek.DataSource
	schema       peek.Schema
	lock         sync.Mutex
	endListeners []func()
}

// OnEnd registers a listener which fires when this iterator runs out of Partitions
func (dsvi *dsvFilePartitionIterator) OnEnd(onEnd func()) {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	dsvi.endListeners = append(dsvi.endListeners, onEnd)
}

// HasNextPartition returns true iff this PartitionIterator can produce another Partition
func (dsvi *dsvFilePartitionIterator) HasNextPartition() bool {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	return dsvi.hasNext
}

// Close stops iteration, firing any end listeners which have not fired yet
func (dsvi *dsvFilePartitionIterator) Close() error {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	dsvi.end()
	return nil
}

func (dsvi *dsvFilePartitionIterator) end() {
	dsvi.hasNext = false
	for _, l := range dsvi.endListeners {
		l()
	}
	dsvi.endListeners = []func(){}
}

// NextPartition returns the next Partition if one is available, or an error
func (dsvi *dsvFilePartitionIterator) NextPartition() (peek.OperablePartition, error) {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	if !dsvi.hasNext {
		return nil, errors.NoMorePartitionsError{}
	}
	colNames := dsvi.schema.ColumnNames()
	colTypes := dsvi.schema.ColumnTypes()
	part := datasource.CreateBuildablePartition(dsvi.parser.PartitionSize(), dsvi.schema)
	for {
		// If the partition is full, we're done
		if part.GetNumRows() == part.GetMaxRows() {
			return part, nil
		}
		// Otherwise, grab another line from the file
		rowStrings, err := dsvi.reader.Read()
		if err == io.EOF {
			dsvi.end()
			// the consumer discards empty partitions
			return part, nil
		} else if err != nil {
			return nil, err
		}
		// create a new row to place values into
		row, err := part.AppendEmptyRow()
		if err != nil {
			return nil, err
		}
		if err = scanRow(dsvi.parser.conf, colNames, colTypes, rowStrings, row); err != nil {
			line, _ := dsvi.reader.FieldPos(0)
			return nil, &RowError{Line: line, Err: err}
		}
	}
}
