package schema

import (
	"fmt"
	"reflect"

	"github.com/go-sif/peek"
	errors "github.com/go-sif/peek/errors"
)

// column describes the position and type of a field in a Row
type column struct {
	idx     int
	colType peek.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() peek.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// SetIndex modifies the index of this Column within a Schema
func (c *column) SetIndex(newIndex int) {
	c.idx = newIndex
}

// Type returns the ColumnType of this Column
func (c *column) Type() peek.ColumnType {
	return c.colType
}

// schema is a mapping from column names to Columns, which
// remember their own index so that names can be recovered in order
type schema struct {
	schema map[string]peek.Column
}

// CreateSchema is a factory for Schemas
func CreateSchema() peek.Schema {
	return &schema{
		schema: make(map[string]peek.Column),
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema peek.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, offset peek.Column) error {
		otherOffset, err := otherSchema.GetOffset(name)
		if err != nil {
			return err
		}
		if offset.Index() != otherOffset.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(offset.Type()) != reflect.TypeOf(otherOffset.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() peek.Schema {
	newSchema := make(map[string]peek.Column)
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	return &schema{schema: newSchema}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.schema)
}

// GetOffset returns the Column with a particular name
func (s *schema) GetOffset(colName string) (offset peek.Column, err error) {
	offset, ok := s.schema[colName]
	if !ok {
		err = errors.MissingColumnError{Name: colName}
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, err := s.GetOffset(colName)
	return err == nil
}

// CreateColumn appends a new column to the Schema
func (s *schema) CreateColumn(colName string, columnType peek.ColumnType) (newSchema peek.Schema, err error) {
	if _, containsOffset := s.schema[colName]; containsOffset {
		return nil, fmt.Errorf("Schema already contains column with name %s", colName)
	}
	if columnType == nil {
		return nil, fmt.Errorf("Column %s must have a type", colName)
	}
	s.schema[colName] = &column{len(s.schema), columnType}
	return s, nil
}

// RenameColumn renames a column within the Schema, keeping its position
func (s *schema) RenameColumn(oldName string, newName string) (newSchema peek.Schema, err error) {
	if oldName == newName {
		return s, nil
	}
	col, err := s.GetOffset(oldName)
	if err != nil {
		return nil, err
	}
	if s.HasColumn(newName) {
		return nil, fmt.Errorf("Schema already contains column with name %s", newName)
	}
	s.schema[newName] = col
	delete(s.schema, oldName)
	return s, nil
}

// Project builds a fresh Schema containing only the named columns, in the given order
func (s *schema) Project(colNames ...string) (newSchema peek.Schema, err error) {
	newSchema = CreateSchema()
	for _, name := range colNames {
		col, err := s.GetOffset(name)
		if err != nil {
			return nil, err
		}
		if newSchema, err = newSchema.CreateColumn(name, col.Type()); err != nil {
			return nil, err
		}
	}
	return newSchema, nil
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.schema))
	for k, v := range s.schema {
		names[v.Index()] = k
	}
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []peek.ColumnType {
	types := make([]peek.ColumnType, len(s.schema))
	for _, v := range s.schema {
		types[v.Index()] = v.Type()
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *schema) ForEachColumn(fn func(name string, col peek.Column) error) error {
	for _, name := range s.ColumnNames() {
		if err := fn(name, s.schema[name]); err != nil {
			return err
		}
	}
	return nil
}
