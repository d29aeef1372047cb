package partition

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-sif/peek"
	errors "github.com/go-sif/peek/errors"
)

// rowImpl is a representation of a single row of columnar data,
// (a slice of a Partition), along with a reference to the
// Schema for that row. In practice, users of Row will call its
// getter and setter methods to retrieve, manipulate and store data
type rowImpl struct {
	partID string
	values []interface{}
	schema peek.Schema
}

// CreateRow builds a new row from values in schema order
func CreateRow(partID string, values []interface{}, schema peek.Schema) peek.Row {
	return &rowImpl{partID: partID, values: values, schema: schema}
}

// Schema returns a read-only copy of the schema for a row
func (r *rowImpl) Schema() peek.Schema {
	return r.schema.Clone()
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	r.schema.ForEachColumn(func(name string, col peek.Column) error {
		val := "nil"
		if v := r.values[col.Index()]; v != nil {
			val = fmt.Sprintf("%#v", col.Type().ToString(v))
		}
		fmt.Fprintf(&res, "\"%s\": %s,", name, val)
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}

// IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
func (r *rowImpl) IsNil(colName string) bool {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return false
	}
	return r.values[offset.Index()] == nil
}

// SetNil sets the given column value to nil within this row
func (r *rowImpl) SetNil(colName string) error {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return err
	}
	r.values[offset.Index()] = nil
	return nil
}

// Get returns the value of any column as an interface{}, or nil if it is nil
func (r *rowImpl) Get(colName string) (interface{}, error) {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return nil, err
	}
	return r.values[offset.Index()], nil
}

// Set checks the value against the column type and stores it. A nil value sets the column to nil.
func (r *rowImpl) Set(colName string, value interface{}) error {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return err
	}
	if value != nil {
		if err := checkValueType(colName, offset.Type(), value); err != nil {
			return err
		}
	}
	r.values[offset.Index()] = value
	return nil
}

// getTyped fetches a non-nil value, checking that the column has the expected type name
func (r *rowImpl) getTyped(colName string, expected string) (interface{}, error) {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return nil, err
	}
	if offset.Type().Name() != expected {
		return nil, errors.ColumnTypeError{Name: colName, Expected: expected, Actual: offset.Type().Name()}
	}
	v := r.values[offset.Index()]
	if v == nil {
		return nil, errors.NilValueError{Name: colName}
	}
	return v, nil
}

// GetString returns a string value from a string column
func (r *rowImpl) GetString(colName string) (string, error) {
	v, err := r.getTyped(colName, "string")
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// GetInt64 returns an int64 value from a long column
func (r *rowImpl) GetInt64(colName string) (int64, error) {
	v, err := r.getTyped(colName, "long")
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// GetFloat64 returns a float64 value from a double column
func (r *rowImpl) GetFloat64(colName string) (float64, error) {
	v, err := r.getTyped(colName, "double")
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// GetBool returns a bool value from a boolean column
func (r *rowImpl) GetBool(colName string) (bool, error) {
	v, err := r.getTyped(colName, "boolean")
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// GetTime returns a time.Time value from a timestamp column
func (r *rowImpl) GetTime(colName string) (time.Time, error) {
	v, err := r.getTyped(colName, "timestamp")
	if err != nil {
		return time.Time{}, err
	}
	return v.(time.Time), nil
}

// SetString stores a string in a string column
func (r *rowImpl) SetString(colName string, value string) error {
	return r.Set(colName, value)
}

// SetInt64 stores an int64 in a long column
func (r *rowImpl) SetInt64(colName string, value int64) error {
	return r.Set(colName, value)
}

// SetFloat64 stores a float64 in a double column
func (r *rowImpl) SetFloat64(colName string, value float64) error {
	return r.Set(colName, value)
}

// SetBool stores a bool in a boolean column
func (r *rowImpl) SetBool(colName string, value bool) error {
	return r.Set(colName, value)
}

// SetTime stores a time.Time in a timestamp column
func (r *rowImpl) SetTime(colName string, value time.Time) error {
	return r.Set(colName, value)
}

func checkValueType(colName string, colType peek.ColumnType, value interface{}) error {
	ok := false
	switch colType.(type) {
	case *peek.StringColumnType:
		_, ok = value.(string)
	case *peek.Int64ColumnType:
		_, ok = value.(int64)
	case *peek.Float64ColumnType:
		_, ok = value.(float64)
	case *peek.BoolColumnType:
		_, ok = value.(bool)
	case *peek.TimeColumnType:
		_, ok = value.(time.Time)
	default:
		// custom column types accept anything they can render
		ok = true
	}
	if !ok {
		return errors.ColumnTypeError{Name: colName, Expected: colType.Name(), Actual: fmt.Sprintf("%T", value)}
	}
	return nil
}
