package archive

import (
	"archive/tar"
	"bufio"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"github.com/wal-g/zz/utility"
)

type TarUnpacker struct {
	Options
}

func (unpacker TarUnpacker) Unpack(source, destination string) error {
	file, err := os.Open(source)
	if err != nil {
		return newExtractError(source, destination, err)
	}
	defer utility.LoggedClose(file, "")

	if err = os.MkdirAll(destination, 0755); err != nil {
		return newExtractError(source, destination, err)
	}
	interpreter := NewFileEntryInterpreter(destination, unpacker.Fsync)
	if err = extractTar(interpreter, bufio.NewReader(file)); err != nil {
		return newExtractError(source, destination, err)
	}
	return nil
}

// extractTar interprets every member of one tar stream in archive order.
func extractTar(interpreter EntryInterpreter, source io.Reader) error {
	tarReader := tar.NewReader(source)

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "extractTar: tar extract failed")
		}

		entry, ok := tarEntry(header)
		if !ok {
			continue
		}
		err = interpreter.Interpret(tarReader, entry)
		if err != nil {
			return errors.Wrap(err, "extractTar: Interpret failed")
		}
	}
	return nil
}

// tarEntry skips members that have no filesystem counterpart here
// (devices, fifos, pax globals).
func tarEntry(header *tar.Header) (Entry, bool) {
	entry := Entry{
		Name:     header.Name,
		Mode:     fs.FileMode(header.Mode).Perm(),
		Linkname: header.Linkname,
	}
	switch header.Typeflag {
	case tar.TypeReg, tar.TypeRegA:
		entry.Type = RegularEntry
	case tar.TypeDir:
		entry.Type = DirectoryEntry
	case tar.TypeSymlink:
		entry.Type = SymlinkEntry
	case tar.TypeLink:
		entry.Type = HardlinkEntry
	default:
		return Entry{}, false
	}
	return entry, true
}
