package partition

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/go-sif/peek"
	errors "github.com/go-sif/peek/errors"
)

func init() {
	gob.Register(time.Time{})
}

// wirePartition is the gob representation of a Partition
type wirePartition struct {
	ID      string
	MaxRows int
	Rows    [][]interface{}
}

// ToBytes serializes a Partition built by this package
func ToBytes(part peek.Partition) ([]byte, error) {
	p, ok := part.(*partitionImpl)
	if !ok {
		return nil, fmt.Errorf("cannot serialize partition of type %T", part)
	}
	buff := new(bytes.Buffer)
	e := gob.NewEncoder(buff)
	err := e.Encode(&wirePartition{ID: p.id, MaxRows: p.maxRows, Rows: p.rows})
	if err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// FromBytes deserializes a Partition, checking that its rows fit the given schema
func FromBytes(data []byte, schema peek.Schema) (peek.OperablePartition, error) {
	var w wirePartition
	d := gob.NewDecoder(bytes.NewReader(data))
	if err := d.Decode(&w); err != nil {
		return nil, err
	}
	p := &partitionImpl{id: w.ID, maxRows: w.MaxRows, rows: make([][]interface{}, 0, len(w.Rows)), schema: schema}
	for _, row := range w.Rows {
		if len(row) != schema.NumColumns() {
			return nil, errors.IncompatibleRowError{}
		}
		p.rows = append(p.rows, row)
	}
	return p, nil
}
