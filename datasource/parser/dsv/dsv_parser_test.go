package dsv

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/schema"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "test.csv")
	require.Nil(t, ioutil.WriteFile(path, []byte(contents), 0644))
	return path
}

func createTestCSV(numRows int) string {
	var b strings.Builder
	b.WriteString("a,b,c,d,e\n")
	for i := 0; i < numRows; i++ {
		fmt.Fprintf(&b, "%d,%d.5,x%d,true,\n", i, i, i)
	}
	return b.String()
}

func TestDiscoverSchemaWithoutHeader(t *testing.T) {
	path := writeTestFile(t, createTestCSV(20))
	s, err := DiscoverSchema(path, &ParserConf{}, false)
	require.Nil(t, err)
	require.Equal(t, []string{"_c0", "_c1", "_c2", "_c3", "_c4"}, s.ColumnNames())
	for _, ct := range s.ColumnTypes() {
		require.Equal(t, "string", ct.Name())
	}
}

func TestDiscoverSchemaWithHeader(t *testing.T) {
	path := writeTestFile(t, "id, ,id,name\n1,2,3,4\n")
	s, err := DiscoverSchema(path, &ParserConf{Header: true}, false)
	require.Nil(t, err)
	require.Equal(t, []string{"id0", "_c1", "id2", "name"}, s.ColumnNames())
}

func TestDiscoverSchemaInferTypes(t *testing.T) {
	path := writeTestFile(t, createTestCSV(20))
	s, err := DiscoverSchema(path, &ParserConf{Header: true}, true)
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, s.ColumnNames())
	types := s.ColumnTypes()
	require.Equal(t, "long", types[0].Name())
	require.Equal(t, "double", types[1].Name())
	require.Equal(t, "string", types[2].Name())
	require.Equal(t, "string", types[4].Name())
}

func TestDiscoverSchemaInferTypesWidens(t *testing.T) {
	tests := []struct {
		contents string
		header   bool
		expected []string
	}{
		{"id,score\n1,2\n2,3.5\n", true, []string{"long", "double"}},
		{"id,name\n1,a\n2,b\nthree,c\n", true, []string{"string", "string"}},
		{"1,true\n2.5,maybe\nx,false\n", false, []string{"string", "string"}},
		{"1,,3\n4,,\n", false, []string{"long", "string", "long"}},
		{"a,b\n", true, []string{"string", "string"}},
	}
	for _, test := range tests {
		s, err := DiscoverSchema(writeTestFile(t, test.contents), &ParserConf{Header: test.header}, true)
		require.Nil(t, err, test.contents)
		names := make([]string, 0, len(test.expected))
		for _, ct := range s.ColumnTypes() {
			names = append(names, ct.Name())
		}
		require.Equal(t, test.expected, names, test.contents)
	}
}

func TestDiscoverSchemaInferTypesRagged(t *testing.T) {
	path := writeTestFile(t, "1,2,3\n4,5\n6,7.5,8,9\n")
	s, err := DiscoverSchema(path, &ParserConf{}, true)
	require.Nil(t, err)
	require.Equal(t, []string{"_c0", "_c1", "_c2"}, s.ColumnNames())
	types := s.ColumnTypes()
	require.Equal(t, "long", types[0].Name())
	require.Equal(t, "double", types[1].Name())
	require.Equal(t, "long", types[2].Name())
}

func TestDiscoverSchemaEmptyFile(t *testing.T) {
	path := writeTestFile(t, "")
	_, err := DiscoverSchema(path, &ParserConf{}, false)
	require.NotNil(t, err)
}

func TestDiscoverSchemaMalformed(t *testing.T) {
	path := writeTestFile(t, "a,\"b\n")
	_, err := DiscoverSchema(path, &ParserConf{}, false)
	require.NotNil(t, err)
}

func TestParsePartitions(t *testing.T) {
	s := schema.CreateSchema()
	for i := 0; i < 5; i++ {
		s.CreateColumn(ColumnName(i), &peek.StringColumnType{})
	}
	parser := CreateParser(&ParserConf{PartitionSize: 8})
	ended := false
	pi, err := parser.Parse(strings.NewReader(createTestCSV(20)), nil, s, func() { ended = true })
	require.Nil(t, err)
	totalRows := 0
	numPartitions := 0
	for pi.HasNextPartition() {
		part, err := pi.NextPartition()
		require.Nil(t, err)
		if numPartitions == 0 {
			first, err := part.GetRow(0).GetString("_c0")
			require.Nil(t, err)
			require.Equal(t, "a", first)
			require.True(t, part.GetRow(1).IsNil("_c4"))
		}
		totalRows += part.GetNumRows()
		numPartitions++
	}
	require.True(t, ended)
	require.Equal(t, 21, totalRows)
	require.Equal(t, 3, numPartitions)
	_, err = pi.NextPartition()
	require.NotNil(t, err)
}

func TestParseTypedAndRagged(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("n", &peek.Int64ColumnType{})
	s.CreateColumn("f", &peek.Float64ColumnType{})
	s.CreateColumn("s", &peek.StringColumnType{})
	parser := CreateParser(&ParserConf{Header: true, Delimiter: ';', NilValue: "null"})
	pi, err := parser.Parse(strings.NewReader("n;f;s\n1;2.5\n2;null;x;extra\n"), nil, s, nil)
	require.Nil(t, err)
	part, err := pi.NextPartition()
	require.Nil(t, err)
	require.Equal(t, 2, part.GetNumRows())
	n, err := part.GetRow(0).GetInt64("n")
	require.Nil(t, err)
	require.Equal(t, int64(1), n)
	require.True(t, part.GetRow(0).IsNil("s"))
	require.True(t, part.GetRow(1).IsNil("f"))
	str, err := part.GetRow(1).GetString("s")
	require.Nil(t, err)
	require.Equal(t, "x", str)
}

func TestParseBadValue(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("n", &peek.Int64ColumnType{})
	parser := CreateParser(&ParserConf{})
	pi, err := parser.Parse(strings.NewReader("1\n2\nthree\n"), nil, s, nil)
	require.Nil(t, err)
	_, err = pi.NextPartition()
	require.NotNil(t, err)
	rowErr, ok := err.(*RowError)
	require.True(t, ok)
	require.Equal(t, 3, rowErr.Line)
}

func TestCloseFiresEndListeners(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("_c0", &peek.StringColumnType{})
	closed := 0
	pi, err := CreateParser(&ParserConf{}).Parse(strings.NewReader("a\nb\n"), nil, s, func() { closed++ })
	require.Nil(t, err)
	require.Nil(t, pi.Close())
	require.Nil(t, pi.Close())
	require.Equal(t, 1, closed)
	require.False(t, pi.HasNextPartition())
}
