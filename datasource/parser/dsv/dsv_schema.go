package dsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	arrowcsv "github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-sif/peek"
	"github.com/go-sif/peek/schema"
)

// ColumnName returns the default name of the column at position idx: _c0, _c1, ...
func ColumnName(idx int) string {
	return fmt.Sprintf("_c%d", idx)
}

// DiscoverSchema builds a Schema for a DSV file from its first record. Without a header,
// columns are named by position (see ColumnName). With one, names are taken from the header,
// where blank names fall back to the positional name and repeated names are suffixed with their
// position. Every column is a string unless inferTypes is set. Then Arrow's inferring CSV reader
// picks each column's type from the first data record, and the rest of the file widens any column
// holding a value that type cannot parse, from long to double to string. Columns with no values
// at all are strings.
func DiscoverSchema(path string, conf *ParserConf, inferTypes bool) (peek.Schema, error) {
	p := CreateParser(conf)
	names, err := p.discoverColumnNames(path)
	if err != nil {
		return nil, err
	}
	types := make([]peek.ColumnType, len(names))
	for i := range types {
		types[i] = &peek.StringColumnType{}
	}
	if inferTypes {
		inferred, err := p.inferColumnTypes(path, len(names))
		if err != nil {
			return nil, err
		}
		if inferred != nil {
			if len(inferred) != len(names) {
				return nil, fmt.Errorf("inferred %d column types for %d columns in %s", len(inferred), len(names), path)
			}
			types = inferred
		}
	}
	s := schema.CreateSchema()
	for i, name := range names {
		if _, err := s.CreateColumn(name, types[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *Parser) discoverColumnNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	first, err := p.newReader(f).Read()
	if err == io.EOF {
		return nil, fmt.Errorf("unable to discover schema: %s contains no records", path)
	} else if err != nil {
		return nil, fmt.Errorf("unable to discover schema of %s: %w", path, err)
	}
	names := make([]string, len(first))
	if !p.conf.Header {
		for i := range names {
			names[i] = ColumnName(i)
		}
		return names, nil
	}
	counts := make(map[string]int)
	for _, name := range first {
		counts[strings.TrimSpace(name)]++
	}
	for i, name := range first {
		name = strings.TrimSpace(name)
		switch {
		case len(name) == 0 || name == p.conf.NilValue:
			names[i] = ColumnName(i)
		case counts[name] > 1:
			names[i] = fmt.Sprintf("%s%d", name, i)
		default:
			names[i] = name
		}
	}
	return names, nil
}

// inferColumnTypes returns nil if the file has no data records to infer from.
// Arrow seeds each column's type from the first data record, and every later
// record then widens any column whose value does not parse (long to double to string).
func (p *Parser) inferColumnTypes(path string, numCols int) ([]peek.ColumnType, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reader := p.newReader(f)
	if p.conf.Header {
		if _, err := reader.Read(); err == io.EOF {
			return nil, nil
		} else if err != nil {
			return nil, fmt.Errorf("unable to infer schema of %s: %w", path, err)
		}
	}
	record, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to infer schema of %s: %w", path, err)
	}
	types, err := p.seedColumnTypes(record, numCols)
	if err != nil {
		return nil, fmt.Errorf("unable to infer schema of %s: %w", path, err)
	}
	seen := make([]bool, numCols)
	for {
		p.widenColumnTypes(types, seen, record)
		record, err = reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("unable to infer schema of %s: %w", path, err)
		}
	}
	// a column without a single value has nothing to be typed by
	for i := range types {
		if !seen[i] {
			types[i] = &peek.StringColumnType{}
		}
	}
	return types, nil
}

// seedColumnTypes runs Arrow's inferring reader over a single record, padded or
// truncated to numCols so that ragged files never trip Arrow's field count check
func (p *Parser) seedColumnTypes(record []string, numCols int) ([]peek.ColumnType, error) {
	header := make([]string, numCols)
	row := make([]string, numCols)
	for i := range header {
		header[i] = ColumnName(i)
		if i < len(record) {
			row[i] = record[i]
		} else {
			row[i] = p.conf.NilValue
		}
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = p.conf.Delimiter
	if err := w.WriteAll([][]string{header, row}); err != nil {
		return nil, err
	}
	reader := arrowcsv.NewInferringReader(&buf,
		arrowcsv.WithAllocator(memory.NewGoAllocator()),
		arrowcsv.WithHeader(true),
		arrowcsv.WithComma(p.conf.Delimiter),
		arrowcsv.WithNullReader(true, p.conf.NilValue),
		arrowcsv.WithChunk(-1),
	)
	defer reader.Release()
	types := make([]peek.ColumnType, numCols)
	hasRecord := reader.Next()
	if err := reader.Err(); err != nil {
		return nil, err
	}
	if !hasRecord || reader.Schema() == nil {
		// a lone empty field is written as a blank line, which Arrow skips
		for i := range types {
			types[i] = &peek.StringColumnType{}
		}
		return types, nil
	}
	fields := reader.Schema().Fields()
	if len(fields) != numCols {
		return nil, fmt.Errorf("arrow inferred %d columns from a record of %d", len(fields), numCols)
	}
	for i, field := range fields {
		types[i] = columnTypeFor(field.Type)
	}
	return types, nil
}

// widenColumnTypes checks a record against types with the same parsers used when
// loading, replacing the type of each column which cannot hold its value
func (p *Parser) widenColumnTypes(types []peek.ColumnType, seen []bool, record []string) {
	for i := 0; i < len(types) && i < len(record); i++ {
		val := record[i]
		if len(val) == 0 || val == p.conf.NilValue {
			continue
		}
		seen[i] = true
		for {
			if _, err := types[i].Parse(val); err == nil {
				break
			}
			types[i] = widerColumnType(types[i])
		}
	}
}

// widerColumnType returns the next type able to hold more values than t. Every
// value parses as a string.
func widerColumnType(t peek.ColumnType) peek.ColumnType {
	if _, ok := t.(*peek.Int64ColumnType); ok {
		return &peek.Float64ColumnType{}
	}
	return &peek.StringColumnType{}
}

func columnTypeFor(t arrow.DataType) peek.ColumnType {
	switch t.ID() {
	case arrow.INT64:
		return &peek.Int64ColumnType{}
	case arrow.FLOAT64:
		return &peek.Float64ColumnType{}
	case arrow.BOOL:
		return &peek.BoolColumnType{}
	default:
		return &peek.StringColumnType{}
	}
}
