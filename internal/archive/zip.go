package archive

import (
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
	"github.com/wal-g/zz/utility"
)

// maxLinkSize bounds how much of a symlink entry is read as its target.
const maxLinkSize = 4 << 10

type ZipUnpacker struct {
	Options
}

func (unpacker ZipUnpacker) Unpack(source, destination string) error {
	zipReader, err := zip.OpenReader(source)
	if zipReader == nil {
		return newExtractError(source, destination, err)
	}
	// a reader returned together with an error only flags insecure names,
	// which the interpreter rejects entry by entry
	defer utility.LoggedClose(zipReader, "")

	if err = os.MkdirAll(destination, 0755); err != nil {
		return newExtractError(source, destination, err)
	}
	interpreter := NewFileEntryInterpreter(destination, unpacker.Fsync)
	for _, file := range zipReader.File {
		if err = extractZipFile(interpreter, file); err != nil {
			return newExtractError(source, destination, err)
		}
	}
	return nil
}

func extractZipFile(interpreter EntryInterpreter, file *zip.File) error {
	reader, err := file.Open()
	if err != nil {
		return errors.Wrapf(err, "extractZipFile: failed to open entry '%s'", file.Name)
	}
	defer utility.LoggedClose(reader, "")

	entry := Entry{
		Name: file.Name,
		Mode: file.Mode().Perm(),
		Type: RegularEntry,
	}
	switch {
	case file.Mode().IsDir() || strings.HasSuffix(file.Name, "/"):
		entry.Type = DirectoryEntry
	case file.Mode()&fs.ModeSymlink != 0:
		linkname, err := io.ReadAll(io.LimitReader(reader, maxLinkSize))
		if err != nil {
			return errors.Wrapf(err, "extractZipFile: failed to read link target of '%s'", file.Name)
		}
		entry.Type = SymlinkEntry
		entry.Linkname = string(linkname)
	}

	err = interpreter.Interpret(reader, entry)
	return errors.Wrap(err, "extractZipFile: Interpret failed")
}
