package archive

import "sort"

const (
	TarFileExtension = "tar"
	ZipFileExtension = "zip"
	RarFileExtension = "rar"
)

//go:generate mockgen -destination=../../test/mocks/mock_unpacker.go -package mocks -build_flags -mod=readonly github.com/wal-g/zz/internal/archive Unpacker

// Unpacker writes every entry of the archive at source into destination,
// keeping the relative paths stored in the archive. destination is created
// if it does not exist. Unpacking is not transactional.
type Unpacker interface {
	Unpack(source, destination string) error
}

type Options struct {
	// Fsync every written file before closing it.
	Fsync bool
}

// Capabilities advertises the input strategies a format could support.
// No unpacker uses them yet: every format reads its source from a file path.
type Capabilities struct {
	Streaming         bool
	SeekableStreaming bool
	InMemory          bool
}

var unpackerMakers = map[string]func(options Options) Unpacker{
	TarFileExtension: func(options Options) Unpacker { return TarUnpacker{options} },
	ZipFileExtension: func(options Options) Unpacker { return ZipUnpacker{options} },
	RarFileExtension: func(options Options) Unpacker { return RarUnpacker{options} },
}

var capabilities = map[string]Capabilities{}

// FindUnpacker returns the unpacker for fileExtension. Formats without an
// implementation get an unpacker that fails with UnsupportedFormatError.
func FindUnpacker(fileExtension string, options Options) Unpacker {
	if makeUnpacker, ok := unpackerMakers[fileExtension]; ok {
		return makeUnpacker(options)
	}
	return notImplementedUnpacker{fileExtension}
}

func IsImplemented(fileExtension string) bool {
	_, ok := unpackerMakers[fileExtension]
	return ok
}

func ImplementedExtensions() []string {
	extensions := make([]string, 0, len(unpackerMakers))
	for extension := range unpackerMakers {
		extensions = append(extensions, extension)
	}
	sort.Strings(extensions)
	return extensions
}

func GetCapabilities(fileExtension string) Capabilities {
	return capabilities[fileExtension]
}

type notImplementedUnpacker struct {
	fileExtension string
}

func (unpacker notImplementedUnpacker) Unpack(source, destination string) error {
	return newUnsupportedFormatError(source, unpacker.fileExtension)
}
