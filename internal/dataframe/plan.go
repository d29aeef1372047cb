package dataframe

import (
	"github.com/go-sif/peek"
)

// Plan is an execution Plan for a DataFrame: a source, and the tasks which
// are applied in order to every Partition it produces
type Plan struct {
	source       peek.DataSource
	parser       peek.DataSourceParser
	sourceSchema peek.Schema
	schema       peek.Schema
	tasks        []peek.Task
	limit        int64
}

// Size returns the number of tasks in this Plan
func (p *Plan) Size() int {
	return len(p.tasks)
}

// Parser returns this Plan's DataSourceParser
func (p *Plan) Parser() peek.DataSourceParser {
	return p.parser
}

// Source returns this Plan's DataSource
func (p *Plan) Source() peek.DataSource {
	return p.source
}

// Schema returns the Schema of the Partitions produced by this Plan
func (p *Plan) Schema() peek.Schema {
	return p.schema
}

// Limit returns the maximum number of Rows this Plan collects, or -1 if there is no limit
func (p *Plan) Limit() int64 {
	return p.limit
}
