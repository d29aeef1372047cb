package session

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/datasource/file"
	"github.com/go-sif/peek/datasource/parser/dsv"
	"github.com/go-sif/peek/datasource/parser/jsonl"
)

// Reader loads DataFrames from files. Options are set with Option, and
// apply to every DataFrame subsequently loaded by this Reader.
//
// Recognized options (names are case-insensitive):
//   header        true if the first line of each CSV file names its columns (default false)
//   inferSchema   true to infer CSV column types rather than reading every column as a string (default false)
//   sep           the CSV field delimiter (default ","). "delimiter" is an alias.
//   comment       CSV lines beginning with this character are skipped (default none)
//   nullValue     CSV fields equal to this string are nil (default "")
//   partitionSize the maximum number of rows per Partition (default: the Session's PartitionSize)
type Reader struct {
	session *Session
	options map[string]string
	schema  peek.Schema
}

// Option sets a single option
func (r *Reader) Option(key string, value string) *Reader {
	r.options[strings.ToLower(key)] = value
	return r
}

// Options sets several options
func (r *Reader) Options(options map[string]string) *Reader {
	for k, v := range options {
		r.Option(k, v)
	}
	return r
}

// Schema sets an explicit Schema, which disables schema discovery
func (r *Reader) Schema(schema peek.Schema) *Reader {
	r.schema = schema
	return r
}

// CSV loads delimiter-separated files as a DataFrame. path may be a file path,
// a glob or a file:// URI. Without an explicit Schema, the Schema is discovered
// from the first matching file.
func (r *Reader) CSV(path string) (peek.DataFrame, error) {
	if r.session.isStopped() {
		return nil, fmt.Errorf("Session %s is stopped", r.session.id)
	}
	conf, err := r.csvConf()
	if err != nil {
		return nil, err
	}
	inferSchema, err := r.boolOption("inferschema")
	if err != nil {
		return nil, err
	}
	matches, err := file.Glob(path)
	if err != nil {
		return nil, err
	}
	schema := r.schema
	if schema == nil {
		schema, err = dsv.DiscoverSchema(matches[0], conf, inferSchema)
		if err != nil {
			return nil, fmt.Errorf("unable to determine schema of %s: %w", matches[0], err)
		}
	}
	r.session.opts.Logger.Debugf("Loading %d CSV file(s) from %s with %d columns", len(matches), path, schema.NumColumns())
	return file.CreateDataFrame(path, dsv.CreateParser(conf), schema), nil
}

// JSON loads JSON Lines files as a DataFrame. An explicit Schema is required,
// whose column names are gjson paths into each line.
func (r *Reader) JSON(path string) (peek.DataFrame, error) {
	if r.session.isStopped() {
		return nil, fmt.Errorf("Session %s is stopped", r.session.id)
	}
	if r.schema == nil {
		return nil, fmt.Errorf("JSON sources require an explicit Schema")
	}
	partitionSize, err := r.partitionSize()
	if err != nil {
		return nil, err
	}
	if _, err := file.Glob(path); err != nil {
		return nil, err
	}
	parser := jsonl.CreateParser(&jsonl.ParserConf{PartitionSize: partitionSize})
	return file.CreateDataFrame(path, parser, r.schema), nil
}

func (r *Reader) csvConf() (*dsv.ParserConf, error) {
	conf := &dsv.ParserConf{}
	var err error
	if conf.PartitionSize, err = r.partitionSize(); err != nil {
		return nil, err
	}
	if conf.Header, err = r.boolOption("header"); err != nil {
		return nil, err
	}
	sep, ok := r.options["sep"]
	if !ok {
		sep, ok = r.options["delimiter"]
	}
	if ok {
		if conf.Delimiter, err = singleRune("sep", sep); err != nil {
			return nil, err
		}
	}
	if comment, ok := r.options["comment"]; ok && len(comment) > 0 {
		if conf.Comment, err = singleRune("comment", comment); err != nil {
			return nil, err
		}
	}
	conf.NilValue = r.options["nullvalue"]
	return conf, nil
}

func (r *Reader) partitionSize() (int, error) {
	v, ok := r.options["partitionsize"]
	if !ok {
		return r.session.opts.PartitionSize, nil
	}
	size, err := strconv.Atoi(v)
	if err != nil || size <= 0 {
		return 0, fmt.Errorf("option partitionSize must be a positive integer, was %q", v)
	}
	return size, nil
}

func (r *Reader) boolOption(key string) (bool, error) {
	v, ok := r.options[key]
	if !ok {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("option %s must be true or false, was %q", key, v)
	}
	return b, nil
}

// singleRune parses a one-character option, accepting the escape \t for tab
func singleRune(key string, v string) (rune, error) {
	if v == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("option %s must be a single character, was %q", key, v)
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, nil
}
