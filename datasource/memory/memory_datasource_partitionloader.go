package memory

import (
	"bytes"
	"fmt"

	"github.com/go-sif/peek"
)

// PartitionLoader is capable of loading partitions of data from a buffer
type PartitionLoader struct {
	idx    int
	source *DataSource
}

// ToString returns a string representation of this PartitionLoader
func (pl *PartitionLoader) ToString() string {
	return fmt.Sprintf("Memory loader index: %d", pl.idx)
}

// Load is capable of loading partitions of data from a buffer
func (pl *PartitionLoader) Load(parser peek.DataSourceParser, schema peek.Schema) (peek.PartitionIterator, error) {
	r := bytes.NewReader(pl.source.data[pl.idx])
	return parser.Parse(r, pl.source, schema, nil)
}
