package file

import (
	"fmt"
	"log"
	"os"

	"github.com/go-sif/peek"
)

// PartitionLoader is capable of loading partitions of data from a file
type PartitionLoader struct {
	path   string
	source *DataSource
}

// ToString returns a string representation of this PartitionLoader
func (pl *PartitionLoader) ToString() string {
	return fmt.Sprintf("File loader filename: %s", pl.path)
}

// Load is capable of loading partitions of data from a file
func (pl *PartitionLoader) Load(parser peek.DataSourceParser, schema peek.Schema) (peek.PartitionIterator, error) {
	f, err := os.Open(pl.path)
	if err != nil {
		return nil, err
	}
	pi, err := parser.Parse(f, pl.source, schema, func() {
		err := f.Close()
		if err != nil {
			log.Printf("WARNING: couldn't close file %s: %v", pl.path, err)
		}
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	return pi, nil
}
