package util

import (
	"fmt"

	"github.com/go-sif/peek"
)

// SafeMapOperation wraps a MapOperation such that panics are recovered and nice error messages are constructed
func SafeMapOperation(mapOp peek.MapOperation) (safeMapOp peek.MapOperation) {
	return func(row peek.Row) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = recoveredError("Map", r, row)
			}
		}()
		err = mapOp(row)
		return
	}
}

// SafeFilterOperation wraps a FilterOperation such that panics are recovered and nice error messages are constructed
func SafeFilterOperation(filterOp peek.FilterOperation) (safeFilterOp peek.FilterOperation) {
	return func(row peek.Row) (keep bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				keep = false
				err = recoveredError("Filter", r, row)
			}
		}()
		keep, err = filterOp(row)
		return
	}
}

func recoveredError(op string, r interface{}, row peek.Row) error {
	if anErr, ok := r.(error); ok {
		return fmt.Errorf("%s Panic: %w\nRow: %s\n%s", op, anErr, row.ToString(), GetTrace())
	}
	return fmt.Errorf("%s Panic: %v\nRow: %s\n%s", op, r, row.ToString(), GetTrace())
}
