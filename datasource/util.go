package datasource

import (
	"github.com/go-sif/peek"
	"github.com/go-sif/peek/internal/dataframe"
	"github.com/go-sif/peek/internal/partition"
)

// CreateDataFrame produces a fresh DataFrame (useful for the implementation of DataSources)
func CreateDataFrame(source peek.DataSource, parser peek.DataSourceParser, schema peek.Schema) peek.DataFrame {
	return dataframe.CreateDataFrame(source, parser, schema)
}

// CreateBuildablePartition produces a fresh, empty Partition (useful for the implementation of Parsers)
func CreateBuildablePartition(maxRows int, schema peek.Schema) peek.BuildablePartition {
	return partition.CreateBuildablePartition(maxRows, schema)
}
