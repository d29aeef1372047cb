package dsv

import (
	"fmt"

	"github.com/go-sif/peek"
)

// RowError describes a field which could not be parsed according to the Schema
type RowError struct {
	Line int
	Err  error
}

// Error returns a textual representation of this RowError
func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error
func (e *RowError) Unwrap() error {
	return e.Err
}

// Parses a slice of strings into a Row, according to a schema. Missing trailing fields are left nil and extra fields are ignored.
func scanRow(conf *ParserConf, names []string, colTypes []peek.ColumnType, rowStrings []string, row peek.Row) error {
	for i := 0; i < len(names) && i < len(rowStrings); i++ {
		colVal := rowStrings[i]
		// check for a nil value
		if len(colVal) == 0 || colVal == conf.NilValue {
			continue
		}
		val, err := colTypes[i].Parse(colVal)
		if err != nil {
			return fmt.Errorf("column %s could not be parsed as %s: %w", names[i], colTypes[i].Name(), err)
		}
		if err = row.Set(names[i], val); err != nil {
			return err
		}
	}
	return nil
}
