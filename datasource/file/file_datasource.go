package file

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/datasource"
)

// DataSource is a set of files containing data which will be manipulated according to a DataFrame
type DataSource struct {
	glob   string
	schema peek.Schema
}

// CreateDataFrame is a factory for DataSources. glob may be a filesystem glob or a file:// URI.
func CreateDataFrame(glob string, parser peek.DataSourceParser, schema peek.Schema) peek.DataFrame {
	source := &DataSource{glob, schema}
	return datasource.CreateDataFrame(source, parser, schema)
}

// ResolvePath turns a file:// URI into a filesystem path. Other paths are returned unchanged.
func ResolvePath(pathOrURI string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(pathOrURI), "file:") {
		return pathOrURI, nil
	}
	u, err := url.Parse(pathOrURI)
	if err != nil {
		return "", fmt.Errorf("invalid file URI %s: %w", pathOrURI, err)
	}
	if len(u.Host) > 0 && u.Host != "localhost" {
		return "", fmt.Errorf("file URI %s refers to a remote host", pathOrURI)
	}
	if len(u.Path) == 0 {
		return "", fmt.Errorf("file URI %s has no path", pathOrURI)
	}
	return filepath.FromSlash(u.Path), nil
}

// Glob resolves pathOrURI and returns the matching files, in lexical order.
// A path naming an existing file is returned as-is, even if it contains glob metacharacters.
func Glob(pathOrURI string) ([]string, error) {
	glob, err := ResolvePath(pathOrURI)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(glob); err == nil && !info.IsDir() {
		return []string{glob}, nil
	}
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", glob)
	}
	return matches, nil
}

// Analyze returns a PartitionMap, describing how the source files will be divided into Partitions
func (fs *DataSource) Analyze() (peek.PartitionMap, error) {
	matches, err := Glob(fs.glob)
	if err != nil {
		return nil, err
	}
	return &PartitionMap{
		files:  matches,
		source: fs,
	}, nil
}

// IsStreaming returns true iff this DataSource provides a continuous stream of data
func (fs *DataSource) IsStreaming() bool {
	return false
}
