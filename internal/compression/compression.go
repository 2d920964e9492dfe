package compression

import (
	"io"

	"github.com/wal-g/zz/internal/compression/gzip"
	"github.com/wal-g/zz/internal/compression/lz4"
	"github.com/wal-g/zz/internal/compression/snappy"
)

var CompressingAlgorithms = []string{gzip.AlgorithmName, lz4.AlgorithmName, snappy.AlgorithmName}

type Compressor interface {
	NewWriter(writer io.Writer) (io.WriteCloser, error)
	FileExtension() string
}

// Decompressor wraps a raw stream so that reading from the result yields
// decompressed bytes. Corrupt input may only be reported by Read.
type Decompressor interface {
	Decompress(src io.Reader) (io.ReadCloser, error)
	FileExtension() string
}

var Compressors = map[string]Compressor{
	gzip.AlgorithmName:   gzip.Compressor{},
	lz4.AlgorithmName:    lz4.Compressor{},
	snappy.AlgorithmName: snappy.Compressor{},
}

var Decompressors = []Decompressor{
	gzip.Decompressor{},
	lz4.Decompressor{},
	snappy.Decompressor{},
}

func GetDecompressorByCompressor(compressor Compressor) Decompressor {
	return FindDecompressor(compressor.FileExtension())
}

func FindDecompressor(fileExtension string) Decompressor {
	for _, decompressor := range Decompressors {
		if decompressor.FileExtension() == fileExtension {
			return decompressor
		}
	}
	return nil
}

func FindCompressor(fileExtension string) Compressor {
	for _, compressor := range Compressors {
		if compressor.FileExtension() == fileExtension {
			return compressor
		}
	}
	return nil
}
