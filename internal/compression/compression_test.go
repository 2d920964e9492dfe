package compression

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/zz/utility"
)

type BiasedRandomReader struct {
	rnd *rand.Rand
}

func NewBiasedRandomReader(seed int64) *BiasedRandomReader {
	return &BiasedRandomReader{rand.New(rand.NewSource(seed))}
}

func (reader *BiasedRandomReader) Read(p []byte) (n int, err error) {
	for i := 0; i < len(p); i++ {
		p[i] = byte(utility.Min(10, reader.rnd.Int()%256))
	}
	return len(p), nil
}

func testCompressor(compressor Compressor, testData []byte, t *testing.T) {
	var compressed bytes.Buffer
	compressingWriter, err := compressor.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = utility.FastCopy(compressingWriter, bytes.NewReader(testData))
	assert.NoError(t, err)
	err = compressingWriter.Close()
	assert.NoError(t, err)

	decompressor := GetDecompressorByCompressor(compressor)
	require.NotNil(t, decompressor, compressor.FileExtension())
	dr, err := decompressor.Decompress(&compressed)
	require.NoError(t, err)
	var decompressed bytes.Buffer
	_, err = io.Copy(&decompressed, dr)
	assert.NoError(t, err)
	assert.NoError(t, dr.Close())
	assert.Equal(t, string(testData), decompressed.String(), compressor.FileExtension())
}

func generateTestData(size int64) []byte {
	var testData bytes.Buffer
	_, _ = io.Copy(&testData, io.LimitReader(NewBiasedRandomReader(0x1337), size))
	return testData.Bytes()
}

func TestSmallDataCompression(t *testing.T) {
	const SmallDataSize = 16 << 10
	testData := generateTestData(SmallDataSize)
	for _, compressingAlgorithm := range CompressingAlgorithms {
		testCompressor(Compressors[compressingAlgorithm], testData, t)
	}
}

func TestBigDataCompression(t *testing.T) {
	const BigDataSize = 3 << 20
	testData := generateTestData(BigDataSize)
	for _, compressingAlgorithm := range CompressingAlgorithms {
		testCompressor(Compressors[compressingAlgorithm], testData, t)
	}
}

func TestEmptyDataCompression(t *testing.T) {
	for _, compressingAlgorithm := range CompressingAlgorithms {
		testCompressor(Compressors[compressingAlgorithm], []byte{}, t)
	}
}

func TestFindDecompressor(t *testing.T) {
	for _, ext := range []string{"gz", "lz4", "sz"} {
		assert.NotNil(t, FindDecompressor(ext), ext)
		assert.NotNil(t, FindCompressor(ext), ext)
	}
	assert.Nil(t, FindDecompressor("zst"))
	assert.Nil(t, FindCompressor("tar"))
}

func TestCorruptInputFailsOnRead(t *testing.T) {
	garbage := strings.Repeat("definitely not compressed ", 64)
	for _, decompressor := range Decompressors {
		dr, err := decompressor.Decompress(strings.NewReader(garbage))
		if err != nil {
			continue
		}
		_, err = io.Copy(io.Discard, dr)
		assert.Error(t, err, decompressor.FileExtension())
	}
}

func TestTruncatedInputFails(t *testing.T) {
	testData := generateTestData(64 << 10)
	for _, compressingAlgorithm := range CompressingAlgorithms {
		compressor := Compressors[compressingAlgorithm]
		var compressed bytes.Buffer
		w, err := compressor.NewWriter(&compressed)
		require.NoError(t, err)
		_, err = w.Write(testData)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		truncated := compressed.Bytes()[:compressed.Len()/2]
		dr, err := GetDecompressorByCompressor(compressor).Decompress(bytes.NewReader(truncated))
		if err != nil {
			continue
		}
		_, err = io.Copy(io.Discard, dr)
		assert.Error(t, err, compressor.FileExtension())
	}
}
