package memory

import (
	"github.com/go-sif/peek"
	"github.com/go-sif/peek/datasource"
)

// DataSource is a set of in-memory buffers containing data which will be manipulated according to a DataFrame.
// Each buffer is parsed by its own PartitionLoader.
type DataSource struct {
	data [][]byte
}

// CreateDataFrame is a factory for DataSources
func CreateDataFrame(data [][]byte, parser peek.DataSourceParser, schema peek.Schema) peek.DataFrame {
	source := &DataSource{data}
	return datasource.CreateDataFrame(source, parser, schema)
}

// Analyze returns a PartitionMap, describing how the source data will be divided into Partitions
func (fs *DataSource) Analyze() (peek.PartitionMap, error) {
	return &PartitionMap{
		source: fs,
	}, nil
}

// IsStreaming returns true iff this DataSource provides a continuous stream of data
func (fs *DataSource) IsStreaming() bool {
	return false
}
