package file

import (
	"io/ioutil"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	p, err := ResolvePath("/tmp/stats.csv")
	require.Nil(t, err)
	require.Equal(t, "/tmp/stats.csv", p)
	p, err = ResolvePath("file:///tmp/stats.csv")
	require.Nil(t, err)
	require.Equal(t, filepath.FromSlash("/tmp/stats.csv"), p)
	p, err = ResolvePath("file://localhost/tmp/my%20stats.csv")
	require.Nil(t, err)
	require.Equal(t, filepath.FromSlash("/tmp/my stats.csv"), p)
	_, err = ResolvePath("file://elsewhere/tmp/stats.csv")
	require.NotNil(t, err)
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "c.txt"} {
		require.Nil(t, ioutil.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0644))
	}
	source := &DataSource{glob: "file://" + filepath.ToSlash(filepath.Join(dir, "*.csv"))}
	pm, err := source.Analyze()
	require.Nil(t, err)
	var loaders []string
	for pm.HasNext() {
		loaders = append(loaders, pm.Next().ToString())
	}
	require.Equal(t, []string{
		"File loader filename: " + filepath.Join(dir, "a.csv"),
		"File loader filename: " + filepath.Join(dir, "b.csv"),
	}, loaders)
	require.False(t, source.IsStreaming())

	_, err = (&DataSource{glob: filepath.Join(dir, "*.parquet")}).Analyze()
	require.NotNil(t, err)
}

func TestGlobLiteralPathWithMetacharacters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run[1]*")
	require.Nil(t, os.Mkdir(dir, 0755))
	target := filepath.Join(dir, "stats.csv")
	require.Nil(t, ioutil.WriteFile(target, []byte("x\n"), 0644))

	uri := (&url.URL{Scheme: "file", Path: filepath.ToSlash(target)}).String()
	matches, err := Glob(uri)
	require.Nil(t, err)
	require.Equal(t, []string{target}, matches)
	matches, err = Glob(target)
	require.Nil(t, err)
	require.Equal(t, []string{target}, matches)

	// patterns inside such a directory still cannot match
	_, err = Glob(filepath.Join(dir, "*.csv"))
	require.NotNil(t, err)
}
