package dataframe

import (
	"github.com/go-sif/peek"
)

// A dataFrameImpl implements DataFrame internally for Peek
type dataFrameImpl struct {
	parent   *dataFrameImpl        // the parent DataFrame. Nil if this is the root.
	task     peek.Task             // the task represented by this DataFrame, executed to produce the next one
	taskType peek.TaskType         // a unique name for the type of task this DataFrame represents
	source   peek.DataSource       // the source of the data
	parser   peek.DataSourceParser // the parser for the source data
	schema   peek.Schema           // the schema of the data at this task
}

// CreateDataFrame is a factory for DataFrames. This function is not intended to be used directly,
// as DataFrames are returned by DataSource packages.
func CreateDataFrame(source peek.DataSource, parser peek.DataSourceParser, schema peek.Schema) peek.DataFrame {
	return &dataFrameImpl{
		parent:   nil,
		task:     &noOpTask{},
		taskType: peek.ExtractTaskType,
		source:   source,
		parser:   parser,
		schema:   schema,
	}
}

// GetSchema returns the Schema of a DataFrame
func (df *dataFrameImpl) GetSchema() peek.Schema {
	return df.schema
}

// GetDataSource returns the DataSource of a DataFrame
func (df *dataFrameImpl) GetDataSource() peek.DataSource {
	return df.source
}

// GetParser returns the DataSourceParser of a DataFrame
func (df *dataFrameImpl) GetParser() peek.DataSourceParser {
	return df.parser
}

// To is a "functional operations" factory method for DataFrames,
// chaining operations onto the current one(s).
func (df *dataFrameImpl) To(ops ...peek.DataFrameOperation) (peek.DataFrame, error) {
	next := df
	// See https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis for details of approach
	for _, op := range ops {
		result, err := op(next)
		if err != nil {
			return nil, err
		}
		next = &dataFrameImpl{
			parent:   next,
			source:   df.source,
			task:     result.Task,
			taskType: result.TaskType,
			parser:   df.parser,
			schema:   result.DataSchema,
		}
	}
	return next, nil
}
