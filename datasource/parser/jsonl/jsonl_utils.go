package jsonl

import (
	"fmt"

	"github.com/go-sif/peek"
	"github.com/tidwall/gjson"
)

func parseValue(val gjson.Result, colName string, colType peek.ColumnType, row peek.Row) error {
	switch colType.(type) {
	case *peek.BoolColumnType:
		if val.Type != gjson.True && val.Type != gjson.False {
			return fmt.Errorf("Column %s was not a boolean. Was: %s", colName, val.Raw)
		}
		return row.SetBool(colName, val.Bool())
	case *peek.Int64ColumnType:
		if val.Type != gjson.Number {
			return fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
		}
		return row.SetInt64(colName, val.Int())
	case *peek.Float64ColumnType:
		if val.Type != gjson.Number {
			return fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
		}
		return row.SetFloat64(colName, val.Float())
	case *peek.StringColumnType:
		if val.Type == gjson.String {
			return row.SetString(colName, val.Str)
		}
		// nested objects, arrays and scalars are kept as raw JSON
		return row.SetString(colName, val.Raw)
	default:
		if val.Type != gjson.String {
			return fmt.Errorf("Column %s was not a string. Was: %s", colName, val.Raw)
		}
		v, err := colType.Parse(val.Str)
		if err != nil {
			return fmt.Errorf("Column %s: %w", colName, err)
		}
		return row.Set(colName, v)
	}
}

// Parses a JSON document into a Row, according to a schema. Column names are gjson paths.
func scanRow(names []string, types []peek.ColumnType, doc gjson.Result, row peek.Row) error {
	for idx, colName := range names {
		val := doc.Get(colName)
		if !val.Exists() || val.Type == gjson.Null {
			continue
		}
		if err := parseValue(val, colName, types[idx], row); err != nil {
			return err
		}
	}
	return nil
}
