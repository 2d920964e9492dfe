package snappy

import (
	"io"

	"github.com/klauspost/compress/snappy"
)

// Framed snappy, the format written by `snzip -t snappy` and friends.
const (
	AlgorithmName = "snappy"
	FileExtension = "sz"
)

type Compressor struct{}

func (compressor Compressor) NewWriter(writer io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(writer), nil
}

func (compressor Compressor) FileExtension() string {
	return FileExtension
}

type Decompressor struct{}

func (decompressor Decompressor) Decompress(src io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(src)), nil
}

func (decompressor Decompressor) FileExtension() string {
	return FileExtension
}
