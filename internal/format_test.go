package internal

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/zz/internal/archive"
)

func TestDetectFormat_stream(t *testing.T) {
	for _, token := range []string{"gz", "lz4", "sz", "GZ", "Lz4"} {
		descriptor, ok := DetectFormat(token)
		require.True(t, ok, token)
		assert.Equal(t, StreamClass, descriptor.Class(), token)
		assert.IsType(t, StreamFormat(""), descriptor)
	}
}

func TestDetectFormat_archive(t *testing.T) {
	tokens := []string{"a", "ar", "tar", "iso", "bz2", "lzma", "xz", "p7z", "alz", "egg", "apk", "cab", "dmg", "rar", "zip"}
	for _, token := range tokens {
		descriptor, ok := DetectFormat(token)
		require.True(t, ok, token)
		assert.Equal(t, ArchiveClass, descriptor.Class(), token)
		assert.Equal(t, token, descriptor.Token())
	}
	descriptor, ok := DetectFormat("ZIP")
	require.True(t, ok)
	assert.Equal(t, ZipFormat, descriptor)
}

func TestDetectFormat_sevenZipAlias(t *testing.T) {
	descriptor, ok := DetectFormat("7z")
	require.True(t, ok)
	assert.Equal(t, P7zFormat, descriptor)
}

func TestDetectFormat_unknown(t *testing.T) {
	for _, token := range []string{"", "txt", "zst", "tgz", "gzip", ".gz"} {
		_, ok := DetectFormat(token)
		assert.False(t, ok, token)
	}
}

func TestFormatTokensAreDisjoint(t *testing.T) {
	_, err := buildFormatIndex(StreamFormats, ArchiveFormats, archiveAliases)
	assert.NoError(t, err)
	assert.Len(t, formatsByToken, len(StreamFormats)+len(ArchiveFormats)+len(archiveAliases))
}

func TestBuildFormatIndex_rejectsCollision(t *testing.T) {
	_, err := buildFormatIndex([]StreamFormat{"gz", "xz"}, []ArchiveFormat{"XZ"}, nil)
	assert.IsType(t, DuplicateFormatTokenError{}, err)

	_, err = buildFormatIndex(nil, []ArchiveFormat{"zip"}, map[string]ArchiveFormat{"zip": ZipFormat})
	assert.IsType(t, DuplicateFormatTokenError{}, err)
}

func TestStreamFormatsHaveCodecs(t *testing.T) {
	payload := []byte("How much wood could a woodchuck chuck if a woodchuck could chuck wood ?")
	for _, format := range StreamFormats {
		var encoded bytes.Buffer
		encoder, err := format.NewEncoder(&encoded)
		require.NoError(t, err, format)
		_, err = encoder.Write(payload)
		require.NoError(t, err, format)
		require.NoError(t, encoder.Close(), format)

		decoder, err := format.NewDecoder(&encoded)
		require.NoError(t, err, format)
		decoded, err := io.ReadAll(decoder)
		require.NoError(t, err, format)
		assert.Equal(t, payload, decoded, format)
	}
}

func TestStreamFormat_missingCodec(t *testing.T) {
	_, err := StreamFormat("nope").NewDecoder(bytes.NewReader(nil))
	assert.Error(t, err)
	_, err = StreamFormat("nope").NewEncoder(io.Discard)
	assert.Error(t, err)
}

func TestArchiveFormats_implementation(t *testing.T) {
	implemented := map[ArchiveFormat]bool{TarFormat: true, ZipFormat: true, RarFormat: true}
	for _, format := range ArchiveFormats {
		assert.Equal(t, implemented[format], format.IsImplemented(), format)
		assert.Equal(t, archive.Capabilities{}, format.Capabilities(), format)
		assert.NotNil(t, format.Unpacker(archive.Options{}), format)
	}
}
