package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/wal-g/zz/internal/archive"
	"github.com/wal-g/zz/internal/compression"
	"github.com/wal-g/zz/internal/compression/gzip"
	"github.com/wal-g/zz/internal/compression/lz4"
	"github.com/wal-g/zz/internal/compression/snappy"
)

type FormatClass int

const (
	StreamClass FormatClass = iota
	ArchiveClass
)

func (class FormatClass) String() string {
	switch class {
	case StreamClass:
		return "stream"
	case ArchiveClass:
		return "archive"
	}
	return fmt.Sprintf("FormatClass(%d)", int(class))
}

// FormatDescriptor is either a StreamFormat or an ArchiveFormat.
type FormatDescriptor interface {
	Token() string
	Class() FormatClass
	isFormatDescriptor()
}

// StreamFormat is a single-stream compression codec.
type StreamFormat string

const (
	GzFormat  StreamFormat = gzip.FileExtension
	Lz4Format StreamFormat = lz4.FileExtension
	SzFormat  StreamFormat = snappy.FileExtension
)

// ArchiveFormat is a multi-entry container format.
type ArchiveFormat string

const (
	AFormat    ArchiveFormat = "a"
	ArFormat   ArchiveFormat = "ar"
	TarFormat  ArchiveFormat = archive.TarFileExtension
	IsoFormat  ArchiveFormat = "iso"
	Bz2Format  ArchiveFormat = "bz2"
	LzmaFormat ArchiveFormat = "lzma"
	XzFormat   ArchiveFormat = "xz"
	P7zFormat  ArchiveFormat = "p7z"
	AlzFormat  ArchiveFormat = "alz"
	EggFormat  ArchiveFormat = "egg"
	ApkFormat  ArchiveFormat = "apk"
	CabFormat  ArchiveFormat = "cab"
	DmgFormat  ArchiveFormat = "dmg"
	RarFormat  ArchiveFormat = archive.RarFileExtension
	ZipFormat  ArchiveFormat = archive.ZipFileExtension
)

var StreamFormats = []StreamFormat{GzFormat, Lz4Format, SzFormat}

var ArchiveFormats = []ArchiveFormat{
	AFormat, ArFormat, TarFormat, IsoFormat, Bz2Format, LzmaFormat, XzFormat, P7zFormat,
	AlzFormat, EggFormat, ApkFormat, CabFormat, DmgFormat, RarFormat, ZipFormat,
}

// archiveAliases are extra tokens for archive formats whose canonical
// token differs from the usual file extension.
var archiveAliases = map[string]ArchiveFormat{
	"7z": P7zFormat,
}

var formatsByToken map[string]FormatDescriptor

func init() {
	var err error
	formatsByToken, err = buildFormatIndex(StreamFormats, ArchiveFormats, archiveAliases)
	if err != nil {
		panic(err)
	}
}

func buildFormatIndex(streams []StreamFormat, archives []ArchiveFormat,
	aliases map[string]ArchiveFormat) (map[string]FormatDescriptor, error) {
	index := make(map[string]FormatDescriptor, len(streams)+len(archives)+len(aliases))
	add := func(token string, descriptor FormatDescriptor) error {
		token = strings.ToLower(token)
		if existing, ok := index[token]; ok {
			return newDuplicateFormatTokenError(token, existing, descriptor)
		}
		index[token] = descriptor
		return nil
	}
	for _, format := range streams {
		if err := add(string(format), format); err != nil {
			return nil, err
		}
	}
	for _, format := range archives {
		if err := add(string(format), format); err != nil {
			return nil, err
		}
	}
	for alias, format := range aliases {
		if err := add(alias, format); err != nil {
			return nil, err
		}
	}
	return index, nil
}

// DetectFormat looks token up case-insensitively among the stream formats
// and then the archive formats.
func DetectFormat(token string) (FormatDescriptor, bool) {
	descriptor, ok := formatsByToken[strings.ToLower(token)]
	return descriptor, ok
}

func (format StreamFormat) Token() string      { return string(format) }
func (format StreamFormat) Class() FormatClass { return StreamClass }
func (StreamFormat) isFormatDescriptor()       {}

// NewDecoder wraps raw so that reads yield decompressed bytes.
func (format StreamFormat) NewDecoder(raw io.Reader) (io.ReadCloser, error) {
	decompressor := compression.FindDecompressor(string(format))
	if decompressor == nil {
		return nil, errors.Errorf("no decompressor registered for stream format '%s'", format)
	}
	return decompressor.Decompress(raw)
}

// NewEncoder wraps raw so that writes are compressed. Close flushes the
// trailer but does not close raw.
func (format StreamFormat) NewEncoder(raw io.Writer) (io.WriteCloser, error) {
	compressor := compression.FindCompressor(string(format))
	if compressor == nil {
		return nil, errors.Errorf("no compressor registered for stream format '%s'", format)
	}
	return compressor.NewWriter(raw)
}

func (format ArchiveFormat) Token() string      { return string(format) }
func (format ArchiveFormat) Class() FormatClass { return ArchiveClass }
func (ArchiveFormat) isFormatDescriptor()       {}

func (format ArchiveFormat) Capabilities() archive.Capabilities {
	return archive.GetCapabilities(string(format))
}

func (format ArchiveFormat) IsImplemented() bool {
	return archive.IsImplemented(string(format))
}

func (format ArchiveFormat) Unpacker(options archive.Options) archive.Unpacker {
	return archive.FindUnpacker(string(format), options)
}
