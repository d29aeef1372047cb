package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/peek"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	PartitionSize int    // The maximum number of rows per Partition. Defaults to 128.
	Header        bool   // Whether the first line of each file is a header, rather than data. Defaults to false.
	Delimiter     rune   // The delimiter separating columns in the file. Defaults to ,
	Comment       rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue      string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
}

// Parser produces partitions from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.PartitionSize == 0 {
		conf.PartitionSize = 128
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// PartitionSize returns the maximum size in rows of Partitions produced by this Parser
func (p *Parser) PartitionSize() int {
	return p.conf.PartitionSize
}

// Conf returns the (defaulted) configuration of this Parser
func (p *Parser) Conf() ParserConf {
	return *p.conf
}

func (p *Parser) newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	// short rows are padded with nils and long rows are truncated, rather than failing
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	return reader
}

// Parse parses DSV data to produce Partitions
func (p *Parser) Parse(r io.Reader, source peek.DataSource, schema peek.Schema, onIteratorEnd func()) (peek.PartitionIterator, error) {
	reader := p.newReader(r)
	// ignore the header line, if configured to do so
	if p.conf.Header {
		if _, err := reader.Read(); err != nil && err != io.EOF {
			return nil, err
		}
	}

	iterator := &dsvFilePartitionIterator{
		parser:       p,
		reader:       reader,
		hasNext:      true,
		source:       source,
		schema:       schema,
		endListeners: []func(){},
	}
	if onIteratorEnd != nil {
		iterator.OnEnd(onIteratorEnd)
	}
	return iterator, nil
}
