package peek

// Schema is an ordered mapping from column names to Columns.
// It allows one to obtain Columns by name, define new columns,
// rename and project them.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumColumns() int
	GetOffset(colName string) (offset Column, err error)
	HasColumn(colName string) bool
	CreateColumn(colName string, columnType ColumnType) (newSchema Schema, err error)
	RenameColumn(oldName string, newName string) (newSchema Schema, err error)
	Project(colNames ...string) (newSchema Schema, err error) // Project builds a new Schema containing only colNames, in the given order
	ColumnNames() []string
	ColumnTypes() []ColumnType
	ForEachColumn(fn func(name string, col Column) error) error // ForEachColumn iterates in index order
}
