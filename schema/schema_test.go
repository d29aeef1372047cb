package schema

import (
	"testing"

	"github.com/go-sif/peek"
	errors "github.com/go-sif/peek/errors"
	"github.com/stretchr/testify/require"
)

func TestCreateColumn(t *testing.T) {
	schema := CreateSchema()
	_, err := schema.CreateColumn("a", &peek.StringColumnType{})
	require.Nil(t, err)
	_, err = schema.CreateColumn("b", &peek.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema.CreateColumn("a", &peek.StringColumnType{})
	require.NotNil(t, err)
	require.Equal(t, 2, schema.NumColumns())
	require.Equal(t, []string{"a", "b"}, schema.ColumnNames())
	off, err := schema.GetOffset("b")
	require.Nil(t, err)
	require.Equal(t, 1, off.Index())
	require.Equal(t, "long", off.Type().Name())
}

func TestGetMissingColumn(t *testing.T) {
	schema := CreateSchema()
	_, err := schema.GetOffset("nope")
	require.Equal(t, errors.MissingColumnError{Name: "nope"}, err)
	require.False(t, schema.HasColumn("nope"))
}

func TestRenameColumn(t *testing.T) {
	schema := CreateSchema()
	schema.CreateColumn("a", &peek.StringColumnType{})
	schema.CreateColumn("b", &peek.StringColumnType{})
	_, err := schema.RenameColumn("a", "z")
	require.Nil(t, err)
	require.Equal(t, []string{"z", "b"}, schema.ColumnNames())
	_, err = schema.RenameColumn("z", "b")
	require.NotNil(t, err)
	_, err = schema.RenameColumn("q", "r")
	require.NotNil(t, err)
}

func TestProject(t *testing.T) {
	schema := CreateSchema()
	schema.CreateColumn("a", &peek.StringColumnType{})
	schema.CreateColumn("b", &peek.Float64ColumnType{})
	schema.CreateColumn("c", &peek.BoolColumnType{})
	projected, err := schema.Project("c", "a")
	require.Nil(t, err)
	require.Equal(t, []string{"c", "a"}, projected.ColumnNames())
	require.Equal(t, "boolean", projected.ColumnTypes()[0].Name())
	// the original is untouched
	require.Equal(t, 3, schema.NumColumns())
	_, err = schema.Project("a", "d")
	require.NotNil(t, err)
}

func TestCloneAndEquals(t *testing.T) {
	schema := CreateSchema()
	schema.CreateColumn("a", &peek.StringColumnType{})
	schema.CreateColumn("b", &peek.Int64ColumnType{})
	clone := schema.Clone()
	require.Nil(t, schema.Equals(clone))
	clone.RenameColumn("b", "c")
	require.NotNil(t, schema.Equals(clone))
	require.True(t, schema.HasColumn("b"))
}

func TestForEachColumnOrder(t *testing.T) {
	schema := CreateSchema()
	for _, n := range []string{"e", "d", "c", "b", "a"} {
		schema.CreateColumn(n, &peek.StringColumnType{})
	}
	var seen []string
	schema.ForEachColumn(func(name string, col peek.Column) error {
		seen = append(seen, name)
		return nil
	})
	require.Equal(t, []string{"e", "d", "c", "b", "a"}, seen)
}
