package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/zz/internal"
	"github.com/wal-g/zz/testtools"
)

func TestDecompressAll_noFilesProvided(t *testing.T) {
	err := newHandler().DecompressAll(nil, t.TempDir(), 2)
	assert.IsType(t, internal.NoFilesToDecompressError{}, err)
}

func TestDecompressAll_intoSharedDirectory(t *testing.T) {
	dir := t.TempDir()
	var sources []string
	for _, name := range []string{"one.gz", "two.lz4", "three.sz"} {
		ext := filepath.Ext(name)[1:]
		sources = append(sources, testtools.WriteFile(t, dir, name, testtools.Compress(t, ext, originalBytes)))
	}
	buf, err := testtools.TarFile([]testtools.TarEntry{testtools.TarRegular("x.txt", "x")})
	require.NoError(t, err)
	sources = append(sources, testtools.WriteFile(t, dir, "four.tar", buf.Bytes()))
	out := filepath.Join(dir, "out")

	require.NoError(t, newHandler().DecompressAll(sources, out, 2))
	assert.Equal(t, map[string]string{
		"one":        string(originalBytes),
		"two":        string(originalBytes),
		"three":      string(originalBytes),
		"four":       "/",
		"four/x.txt": "x",
	}, testtools.ReadTree(t, out))
}

func TestDecompressAll_reportsFailure(t *testing.T) {
	dir := t.TempDir()
	good := testtools.WriteFile(t, dir, "good.gz", testtools.Compress(t, "gz", originalBytes))
	bad := testtools.WriteFile(t, dir, "bad.txt", []byte("?"))

	err := newHandler().DecompressAll([]string{good, bad}, filepath.Join(dir, "out"), 1)
	assert.ErrorAs(t, err, &internal.ClassificationError{})
}

func TestDecompressAll_destinationIsFile(t *testing.T) {
	dir := t.TempDir()
	source := testtools.WriteFile(t, dir, "good.gz", testtools.Compress(t, "gz", originalBytes))
	destination := testtools.WriteFile(t, dir, "file", []byte("x"))

	err := newHandler().DecompressAll([]string{source}, destination, 1)
	assert.ErrorAs(t, err, &internal.PathConflictError{})
	_, statErr := os.Stat(filepath.Join(dir, "good"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGetMaxExtractConcurrency(t *testing.T) {
	defer viper.Reset()

	viper.Set(internal.ExtractConcurrencySetting, 3)
	concurrency, err := internal.GetMaxExtractConcurrency()
	require.NoError(t, err)
	assert.Equal(t, 3, concurrency)

	viper.Set(internal.ExtractConcurrencySetting, 0)
	_, err = internal.GetMaxExtractConcurrency()
	assert.Error(t, err)
}
