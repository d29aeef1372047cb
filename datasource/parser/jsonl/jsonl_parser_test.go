package jsonl

import (
	"strings"
	"testing"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/schema"
	"github.com/stretchr/testify/require"
)

func TestJSONLParser(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("name", &peek.StringColumnType{})
	s.CreateColumn("meta.count", &peek.Int64ColumnType{})
	s.CreateColumn("score", &peek.Float64ColumnType{})
	s.CreateColumn("ok", &peek.BoolColumnType{})
	s.CreateColumn("when", &peek.TimeColumnType{})
	data := strings.Join([]string{
		`{"name": "a", "meta": {"count": 3}, "score": 1.5, "ok": true, "when": "2021-01-02T03:04:05Z"}`,
		``,
		`{"name": "b", "score": null}`,
		`{"name": {"nested": 1}, "meta": {"count": 4}}`,
	}, "\n")
	parser := CreateParser(&ParserConf{PartitionSize: 2})
	pi, err := parser.Parse(strings.NewReader(data), nil, s, nil)
	require.Nil(t, err)

	part, err := pi.NextPartition()
	require.Nil(t, err)
	require.Equal(t, 2, part.GetNumRows())
	count, err := part.GetRow(0).GetInt64("meta.count")
	require.Nil(t, err)
	require.Equal(t, int64(3), count)
	ok, err := part.GetRow(0).GetBool("ok")
	require.Nil(t, err)
	require.True(t, ok)
	when, err := part.GetRow(0).GetTime("when")
	require.Nil(t, err)
	require.Equal(t, 2021, when.Year())
	require.True(t, part.GetRow(1).IsNil("meta.count"))
	require.True(t, part.GetRow(1).IsNil("score"))

	part, err = pi.NextPartition()
	require.Nil(t, err)
	require.Equal(t, 1, part.GetNumRows())
	name, err := part.GetRow(0).GetString("name")
	require.Nil(t, err)
	require.Equal(t, `{"nested": 1}`, name)
	require.False(t, pi.HasNextPartition())
}

func TestJSONLParserTypeMismatch(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("n", &peek.Int64ColumnType{})
	pi, err := CreateParser(&ParserConf{}).Parse(strings.NewReader(`{"n": "x"}`), nil, s, nil)
	require.Nil(t, err)
	_, err = pi.NextPartition()
	require.NotNil(t, err)

	pi, err = CreateParser(&ParserConf{}).Parse(strings.NewReader(`{"n": 1`), nil, s, nil)
	require.Nil(t, err)
	_, err = pi.NextPartition()
	require.NotNil(t, err)
}
