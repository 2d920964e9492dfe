package archive

import (
	"io"
	"io/fs"
	"os"

	"github.com/nwaples/rardecode/v2"
	"github.com/pkg/errors"
	"github.com/wal-g/zz/utility"
)

// RarUnpacker reads single and multi-volume archives; following volumes are
// looked up next to source.
type RarUnpacker struct {
	Options
}

func (unpacker RarUnpacker) Unpack(source, destination string) error {
	rarReader, err := rardecode.OpenReader(source)
	if err != nil {
		return newExtractError(source, destination, err)
	}
	defer utility.LoggedClose(rarReader, "")

	if err = os.MkdirAll(destination, 0755); err != nil {
		return newExtractError(source, destination, err)
	}
	interpreter := NewFileEntryInterpreter(destination, unpacker.Fsync)
	if err = extractRar(interpreter, rarReader); err != nil {
		return newExtractError(source, destination, err)
	}
	return nil
}

func extractRar(interpreter EntryInterpreter, rarReader *rardecode.ReadCloser) error {
	for {
		header, err := rarReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "extractRar: rar extract failed")
		}

		mode := header.Mode()
		entry := Entry{
			Name: header.Name,
			Mode: mode.Perm(),
			Type: RegularEntry,
		}
		switch {
		case header.IsDir:
			entry.Type = DirectoryEntry
		case mode&fs.ModeSymlink != 0:
			linkname, err := io.ReadAll(io.LimitReader(rarReader, maxLinkSize))
			if err != nil {
				return errors.Wrapf(err, "extractRar: failed to read link target of '%s'", header.Name)
			}
			entry.Type = SymlinkEntry
			entry.Linkname = string(linkname)
		}

		if err = interpreter.Interpret(rarReader, entry); err != nil {
			return errors.Wrap(err, "extractRar: Interpret failed")
		}
	}
}
