package peek

// A Partition is a portion of a columnar dataset, consisting of multiple Rows.
// Partitions are not generally interacted with directly, instead being
// manipulated by DataFrame Tasks.
type Partition interface {
	ID() string            // ID retrieves the ID of this Partition
	GetMaxRows() int       // GetMaxRows retrieves the maximum number of rows in this Partition
	GetNumRows() int       // GetNumRows retrieves the number of rows in this Partition
	GetRow(rowNum int) Row // GetRow retrieves a specific row from this Partition
	GetSchema() Schema     // GetSchema retrieves the Schema of the rows in this Partition
}

// A BuildablePartition can be built. Used in the implementation of DataSources and Parsers
type BuildablePartition interface {
	OperablePartition
	AppendEmptyRow() (Row, error) // AppendEmptyRow adds an all-nil Row to the end of this Partition, returning it so that Row methods can be used to populate it
}

// An OperablePartition can be operated on
type OperablePartition interface {
	Partition
	MapRows(fn MapOperation) (OperablePartition, error)       // MapRows runs a MapOperation on each row in this Partition, manipulating them in-place
	FilterRows(fn FilterOperation) (OperablePartition, error) // FilterRows filters the Rows in the current Partition, creating a new one
	Project(newSchema Schema) (OperablePartition, error)      // Project produces a new Partition containing the columns of newSchema, looked up by name
	Rename(newSchema Schema) OperablePartition                // Rename swaps the Schema of this Partition for an index-compatible one
	Head(n int) OperablePartition                             // Head returns a Partition containing at most the first n Rows
}

// A CollectedPartition has been collected
type CollectedPartition interface {
	Partition
	ForEachRow(fn MapOperation) error // ForEachRow iterates over Rows in a Partition
}
