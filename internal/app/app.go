// Package app downloads a CSV file and previews it through a local Session
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/go-sif/peek/datasource/parser/dsv"
	"github.com/go-sif/peek/internal/fetch"
	"github.com/go-sif/peek/logging"
	ops "github.com/go-sif/peek/operations/transform"
	"github.com/go-sif/peek/session"
	"github.com/hashicorp/go-multierror"
)

const (
	// DefaultURL is the CSV file which is downloaded and previewed
	DefaultURL = "https://data.cityofnewyork.us/api/views/kku6-nxdu/rows.csv"
	// DefaultFileName is where the CSV file is written, relative to the working directory
	DefaultFileName = "stats.csv"
)

// Config configures a Run
type Config struct {
	URL            string           // the CSV file to download
	FileName       string           // where to write it. Existing files are overwritten.
	PreviewRows    int              // the number of rows to show
	PreviewColumns int              // the number of leading columns to show
	Session        *session.Options // options for the Session, if one must be created
	Client         *http.Client     // the client used for the download. Defaults to http.DefaultClient.
}

// DefaultConfig returns the configuration of the peek command
func DefaultConfig() *Config {
	return &Config{
		URL:            DefaultURL,
		FileName:       DefaultFileName,
		PreviewRows:    10,
		PreviewColumns: 4,
		Session:        &session.Options{AppName: "peek"},
	}
}

// Run downloads the configured CSV file, then writes its path, a preview of its
// leading columns and its schema to stdout
func Run(ctx context.Context, cfg *Config, stdout io.Writer) (err error) {
	opts := cfg.Session
	if opts == nil {
		opts = &session.Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	logger.Debugf("Downloading %s", cfg.URL)
	result, err := fetch.Download(ctx, cfg.Client, cfg.URL, cfg.FileName)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", cfg.URL, err)
	}
	logger.Infof("Downloaded %d bytes from %s (xxhash %016x)", result.Bytes, cfg.URL, result.Checksum)
	if _, err := fmt.Fprintf(stdout, "Local CSV file path is: %s\n", result.Path); err != nil {
		return err
	}

	sess, err := session.Builder().AppName("peek").Config(opts).GetOrCreate()
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer func() {
		if sErr := sess.Stop(); sErr != nil {
			err = multierror.Append(err, sErr)
		}
	}()

	fileURI := (&url.URL{Scheme: "file", Path: filepath.ToSlash(result.Path)}).String()
	df, err := sess.Read().CSV(fileURI)
	if err != nil {
		return fmt.Errorf("loading %s: %w", fileURI, err)
	}
	cols := make([]string, cfg.PreviewColumns)
	for i := range cols {
		cols[i] = dsv.ColumnName(i)
	}
	preview, err := df.To(ops.Select(cols...))
	if err != nil {
		return fmt.Errorf("selecting preview columns: %w", err)
	}
	if err := sess.Show(ctx, stdout, preview, cfg.PreviewRows, 20); err != nil {
		return fmt.Errorf("showing %s: %w", fileURI, err)
	}
	return sess.PrintSchema(stdout, df)
}
