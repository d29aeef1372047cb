package jsonl

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/datasource"
	errors "github.com/go-sif/peek/errors"
	"github.com/tidwall/gjson"
)

type jsonlFilePartitionIterator struct {
	parser       *Parser
	scanner      *bufio.Scanner
	lineNum      int
	hasNext      bool
	source       peek.DataSource
	schema       peek.Schema
	lock         sync.Mutex
	endListeners []func()
}

// OnEnd registers a listener which fires when this iterator runs out of Partitions
func (jsonli *jsonlFilePartitionIterator) OnEnd(onEnd func()) {
	jsonli.lock.Lock()
	defer jsonli.lock.Unlock()
	jsonli.endListeners = append(jsonli.endListeners, onEnd)
}

// HasNextPartition returns true iff this PartitionIterator can produce another Partition
func (jsonli *jsonlFilePartitionIterator) HasNextPartition() bool {
	jsonli.lock.Lock()
	defer jsonli.lock.Unlock()
	return jsonli.hasNext
}

// Close stops iteration, firing any end listeners which have not fired yet
func (jsonli *jsonlFilePartitionIterator) Close() error {
	jsonli.lock.Lock()
	defer jsonli.lock.Unlock()
	jsonli.end()
	return nil
}

func (jsonli *jsonlFilePartitionIterator) end() {
	jsonli.hasNext = false
	for _, l := range jsonli.endListeners {
		l()
	}
	jsonli.endListeners = []func(){}
}

// NextPartition returns the next Partition if one is available, or an error
func (jsonli *jsonlFilePartitionIterator) NextPartition() (peek.OperablePartition, error) {
	jsonli.lock.Lock()
	defer jsonli.lock.Unlock()
	if !jsonli.hasNext {
		return nil, errors.NoMorePartitionsError{}
	}
	colNames := jsonli.schema.ColumnNames()
	colTypes := jsonli.schema.ColumnTypes()
	part := datasource.CreateBuildablePartition(jsonli.parser.PartitionSize(), jsonli.schema)
	for {
		// If the partition is full, we're done
		if part.GetNumRows() == part.GetMaxRows() {
			return part, nil
		}
		// Otherwise, grab another line from the file
		if !jsonli.scanner.Scan() {
			if err := jsonli.scanner.Err(); err != nil {
				return nil, err
			}
			jsonli.end()
			return part, nil
		}
		jsonli.lineNum++
		rowString := jsonli.scanner.Text()
		if len(strings.TrimSpace(rowString)) == 0 {
			continue
		}
		if !gjson.Valid(rowString) {
			return nil, fmt.Errorf("line %d is not valid JSON", jsonli.lineNum)
		}
		row, err := part.AppendEmptyRow()
		if err != nil {
			return nil, err
		}
		if err = scanRow(colNames, colTypes, gjson.Parse(rowString), row); err != nil {
			return nil, fmt.Errorf("line %d: %w", jsonli.lineNum, err)
		}
	}
}
