package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-sif/peek/logging"
	"github.com/go-sif/peek/session"
	"github.com/stretchr/testify/require"
)

func createTestConfig(t *testing.T, url string) *Config {
	cfg := DefaultConfig()
	cfg.URL = url
	cfg.FileName = filepath.Join(t.TempDir(), DefaultFileName)
	cfg.Session = &session.Options{TempDir: t.TempDir(), Logger: logging.Discard()}
	return cfg
}

func serveCSV(contents string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		fmt.Fprint(w, contents)
	}))
}

func TestRun(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("a,b,c,d,e\n")
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&sb, "%d,%d,%d,%d,%d\n", i, i*2, i*3, i*4, i*5)
	}
	server := serveCSV(sb.String())
	defer server.Close()
	cfg := createTestConfig(t, server.URL)

	var stdout bytes.Buffer
	require.Nil(t, Run(context.Background(), cfg, &stdout))
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Equal(t, "Local CSV file path is: "+cfg.FileName, lines[0])
	require.True(t, filepath.IsAbs(strings.TrimPrefix(lines[0], "Local CSV file path is: ")))
	require.Equal(t, "+---+---+---+---+", lines[1])
	require.Equal(t, "|_c0|_c1|_c2|_c3|", lines[2])
	require.Equal(t, "|  a|  b|  c|  d|", lines[4])
	require.Equal(t, "|  8| 16| 24| 32|", lines[13])
	require.Equal(t, "+---+---+---+---+", lines[14])
	require.Equal(t, "only showing top 10 rows", lines[15])
	require.Equal(t, "root", lines[16])
	require.Equal(t, []string{
		" |-- _c0: string (nullable = true)",
		" |-- _c1: string (nullable = true)",
		" |-- _c2: string (nullable = true)",
		" |-- _c3: string (nullable = true)",
		" |-- _c4: string (nullable = true)",
	}, lines[17:])
}

func TestRunRelativeFileName(t *testing.T) {
	wd, err := os.Getwd()
	require.Nil(t, err)
	dir := filepath.Join(t.TempDir(), "work[1]")
	require.Nil(t, os.Mkdir(dir, 0755))
	require.Nil(t, os.Chdir(dir))
	t.Cleanup(func() { require.Nil(t, os.Chdir(wd)) })

	server := serveCSV("a,b,c,d\n1,2,3,4\n")
	defer server.Close()
	cfg := createTestConfig(t, server.URL)
	cfg.FileName = DefaultFileName

	var stdout bytes.Buffer
	require.Nil(t, Run(context.Background(), cfg, &stdout))
	lines := strings.Split(stdout.String(), "\n")
	printed := strings.TrimPrefix(lines[0], "Local CSV file path is: ")
	require.NotEqual(t, lines[0], printed)
	require.True(t, filepath.IsAbs(printed))
	require.Equal(t, DefaultFileName, filepath.Base(printed))
	require.Equal(t, "work[1]", filepath.Base(filepath.Dir(printed)))
	_, err = os.Stat(printed)
	require.Nil(t, err)
	require.Contains(t, stdout.String(), "|  1|  2|  3|  4|\n")
}

func TestRunShortFile(t *testing.T) {
	server := serveCSV("x,y,z,w\n1,2,3,4\n")
	defer server.Close()
	var stdout bytes.Buffer
	require.Nil(t, Run(context.Background(), createTestConfig(t, server.URL), &stdout))
	require.NotContains(t, stdout.String(), "only showing")
	require.Contains(t, stdout.String(), "|  1|  2|  3|  4|\n")
}

func TestRunTooFewColumns(t *testing.T) {
	server := serveCSV("x,y\n1,2\n")
	defer server.Close()
	var stdout bytes.Buffer
	err := Run(context.Background(), createTestConfig(t, server.URL), &stdout)
	require.NotNil(t, err)
	require.NotContains(t, stdout.String(), "+---")
}

func TestRunUnreachable(t *testing.T) {
	server := serveCSV("")
	url := server.URL
	server.Close()
	var stdout bytes.Buffer
	err := Run(context.Background(), createTestConfig(t, url), &stdout)
	require.NotNil(t, err)
	require.Equal(t, 0, stdout.Len())
}

func TestRunMalformedCSV(t *testing.T) {
	server := serveCSV("a,b,c,d\n1,\"2\"x,3,4\n")
	defer server.Close()
	var stdout bytes.Buffer
	err := Run(context.Background(), createTestConfig(t, server.URL), &stdout)
	require.NotNil(t, err)
	require.NotContains(t, stdout.String(), "+---")
	require.NotContains(t, stdout.String(), "root")
}

func TestRunHTTPError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	var stdout bytes.Buffer
	err := Run(context.Background(), createTestConfig(t, server.URL), &stdout)
	require.NotNil(t, err)
	require.Equal(t, 0, stdout.Len())
}
