package peek

import (
	"fmt"
	"strconv"
	"time"
)

// ColumnType is the type of a Column. It knows how to parse
// a textual field into a value, and how to render one.
type ColumnType interface {
	Name() string                        // Name is the type name as shown in a schema tree
	Parse(s string) (interface{}, error) // Parse converts a textual field into a value of this type
	ToString(v interface{}) string       // ToString renders a value of this type
}

// StringColumnType is a column type which stores a string value
type StringColumnType struct{}

// Name returns "string"
func (b *StringColumnType) Name() string {
	return "string"
}

// Parse returns s unchanged
func (b *StringColumnType) Parse(s string) (interface{}, error) {
	return s, nil
}

// ToString produces a string representation of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	return v.(string)
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Name returns "long"
func (b *Int64ColumnType) Name() string {
	return "long"
}

// Parse parses a base-10 int64
func (b *Int64ColumnType) Parse(s string) (interface{}, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ToString produces a string representation of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(v.(int64), 10)
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name returns "double"
func (b *Float64ColumnType) Name() string {
	return "double"
}

// Parse parses a float64
func (b *Float64ColumnType) Parse(s string) (interface{}, error) {
	return strconv.ParseFloat(s, 64)
}

// ToString produces a string representation of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name returns "boolean"
func (b *BoolColumnType) Name() string {
	return "boolean"
}

// Parse parses a boolean as strconv.ParseBool does
func (b *BoolColumnType) Parse(s string) (interface{}, error) {
	return strconv.ParseBool(s)
}

// ToString produces a string representation of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return strconv.FormatBool(v.(bool))
}

// TimeColumnType is a column type which stores a time.Time, parsed using Format
type TimeColumnType struct {
	Format string // layout for time.Parse. Defaults to time.RFC3339.
}

// Name returns "timestamp"
func (b *TimeColumnType) Name() string {
	return "timestamp"
}

func (b *TimeColumnType) layout() string {
	if len(b.Format) == 0 {
		return time.RFC3339
	}
	return b.Format
}

// Parse parses a time.Time using this type's Format
func (b *TimeColumnType) Parse(s string) (interface{}, error) {
	t, err := time.Parse(b.layout(), s)
	if err != nil {
		return nil, fmt.Errorf("value %#v could not be parsed as datetime with format %s", s, b.layout())
	}
	return t, nil
}

// ToString produces a string representation of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	return v.(time.Time).Format(b.layout())
}
