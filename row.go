package peek

import "time"

// Row is a view over a single row of a Partition. Values are
// addressed by column name and typed according to the Schema.
type Row interface {
	Schema() Schema                                     // Schema returns a read-only copy of the schema for a row
	ToString() string                                   // ToString returns a string representation of this row
	IsNil(colName string) bool                          // IsNil returns true iff the given column value is nil in this row
	SetNil(colName string) error                        // SetNil sets the given column value to nil within this row
	Get(colName string) (interface{}, error)            // Get returns the value of any column as an interface{}, or nil if it is nil
	Set(colName string, value interface{}) error        // Set checks the value against the column type and stores it
	GetString(colName string) (string, error)           // GetString returns a string value from a string column
	GetInt64(colName string) (int64, error)             // GetInt64 returns an int64 value from a long column
	GetFloat64(colName string) (float64, error)         // GetFloat64 returns a float64 value from a double column
	GetBool(colName string) (bool, error)               // GetBool returns a bool value from a boolean column
	GetTime(colName string) (time.Time, error)          // GetTime returns a time.Time value from a timestamp column
	SetString(colName string, value string) error       // SetString stores a string in a string column
	SetInt64(colName string, value int64) error         // SetInt64 stores an int64 in a long column
	SetFloat64(colName string, value float64) error     // SetFloat64 stores a float64 in a double column
	SetBool(colName string, value bool) error           // SetBool stores a bool in a boolean column
	SetTime(colName string, value time.Time) error      // SetTime stores a time.Time in a timestamp column
}
