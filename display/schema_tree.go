package display

import (
	"fmt"
	"io"

	"github.com/go-sif/peek"
)

// SchemaTree writes a Schema as a tree, one line per column in order.
// Every column is nullable.
func SchemaTree(w io.Writer, schema peek.Schema) error {
	if _, err := fmt.Fprintln(w, "root"); err != nil {
		return err
	}
	return schema.ForEachColumn(func(name string, col peek.Column) error {
		_, err := fmt.Fprintf(w, " |-- %s: %s (nullable = true)\n", name, col.Type().Name())
		return err
	})
}
