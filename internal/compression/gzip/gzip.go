package gzip

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

const (
	AlgorithmName = "gzip"
	FileExtension = "gz"
)

type Compressor struct{}

func (compressor Compressor) NewWriter(writer io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(writer), nil
}

func (compressor Compressor) FileExtension() string {
	return FileExtension
}

type Decompressor struct{}

// Decompress reads the gzip header eagerly, so a bad magic is reported here
// rather than on the first Read.
func (decompressor Decompressor) Decompress(src io.Reader) (io.ReadCloser, error) {
	reader, err := gzip.NewReader(src)
	if err != nil {
		return nil, errors.Wrap(err, "DecompressGzip: failed to read gzip header")
	}
	return reader, nil
}

func (decompressor Decompressor) FileExtension() string {
	return FileExtension
}
