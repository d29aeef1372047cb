package transform

import (
	"fmt"

	"github.com/go-sif/peek"
)

// RemoveColumn removes existing columns, keeping the remainder in order
func RemoveColumn(oldNames ...string) peek.DataFrameOperation {
	return func(d peek.DataFrame) (*peek.DataFrameOperationResult, error) {
		removed := make(map[string]bool, len(oldNames))
		for _, oldName := range oldNames {
			if !d.GetSchema().HasColumn(oldName) {
				return nil, fmt.Errorf("Cannot remove column %s: no such column", oldName)
			}
			removed[oldName] = true
		}
		remaining := []string{}
		for _, name := range d.GetSchema().ColumnNames() {
			if !removed[name] {
				remaining = append(remaining, name)
			}
		}
		if len(remaining) == 0 {
			return nil, fmt.Errorf("Cannot remove every column from a DataFrame")
		}
		return Select(remaining...)(d)
	}
}
