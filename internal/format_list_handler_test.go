package internal_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/zz/internal"
)

func TestListFormats(t *testing.T) {
	formats := internal.ListFormats()
	require.Len(t, formats, 3+15)

	assert.Equal(t, internal.FormatInfo{Token: "gz", Class: "stream", Implemented: true}, formats[0])
	implemented := map[string]bool{}
	for _, f := range formats[3:] {
		assert.Equal(t, "archive", f.Class, f.Token)
		assert.False(t, f.Streaming || f.SeekableStreaming || f.InMemory, f.Token)
		if f.Implemented {
			implemented[f.Token] = true
		}
	}
	assert.Equal(t, map[string]bool{"tar": true, "zip": true, "rar": true}, implemented)
}

func TestWriteFormatList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, internal.WriteFormatList(internal.ListFormats(), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 1+3+15)
	assert.Regexp(t, `^gz\s+stream\s+true`, lines[1])
	for _, line := range lines {
		if strings.HasPrefix(line, "iso ") {
			assert.Regexp(t, `^iso\s+archive\s+false\s+false\s+false\s+false$`, line)
		}
	}
}

func TestWritePrettyFormatList(t *testing.T) {
	var out bytes.Buffer
	internal.WritePrettyFormatList(internal.ListFormats(), &out)

	assert.Contains(t, strings.ToUpper(out.String()), "TOKEN")
	assert.Contains(t, out.String(), "lzma")
}

func TestWriteAsJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, internal.WriteAsJSON(internal.ListFormats(), &out, false))

	var decoded []internal.FormatInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, internal.ListFormats(), decoded)
}
