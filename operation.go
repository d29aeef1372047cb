package peek

// DataFrameOperationResult is the result of a DataFrameOperation
type DataFrameOperationResult struct {
	Task       Task
	TaskType   TaskType
	DataSchema Schema
}

// DataFrameOperation - A generic DataFrame transform, returning a Task that performs the "work" and a (potentially) altered Schema.
type DataFrameOperation func(df DataFrame) (*DataFrameOperationResult, error)

// MapOperation - A generic function for manipulating Rows in-place
type MapOperation func(row Row) error

// FilterOperation - A generic function for determining whether or not a Row should be retained
type FilterOperation func(row Row) (bool, error)
