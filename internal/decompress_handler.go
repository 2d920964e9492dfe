package internal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/wal-g/tracelog"
	"github.com/wal-g/zz/internal/archive"
	"github.com/wal-g/zz/utility"
)

type UnpackerMaker func(format ArchiveFormat) archive.Unpacker

type DecompressHandler struct {
	makeUnpacker UnpackerMaker
}

func NewDecompressHandler(options archive.Options) *DecompressHandler {
	return NewDecompressHandlerWithUnpackers(func(format ArchiveFormat) archive.Unpacker {
		return format.Unpacker(options)
	})
}

func NewDecompressHandlerWithUnpackers(makeUnpacker UnpackerMaker) *DecompressHandler {
	return &DecompressHandler{makeUnpacker: makeUnpacker}
}

// HandleDecompressOnce decompresses or unpacks source once, with the
// options taken from the current configuration.
func HandleDecompressOnce(source, destination string) error {
	return NewDecompressHandler(GetUnpackOptions()).DecompressOnce(source, destination)
}

func GetUnpackOptions() archive.Options {
	return archive.Options{Fsync: !viper.GetBool(TarDisableFsyncSetting)}
}

// DecompressOnce identifies the format of source by its extension and
// writes the decoded content to the resolved destination. An empty
// destination selects the default described by ResolveDestination.
func (handler *DecompressHandler) DecompressOnce(source, destination string) error {
	token := utility.GetFileExtension(source)
	if token == "" {
		return newNoExtensionError(source)
	}
	format, ok := DetectFormat(token)
	if !ok {
		return newUnknownFormatError(source, token)
	}

	info, err := os.Stat(source)
	if err != nil {
		return newIOError(err, "failed to stat source '%s'", source)
	}
	if !info.Mode().IsRegular() {
		return newIOError(errors.New("not a regular file"), "failed to open source '%s'", source)
	}

	target, err := ResolveDestination(source, format.Class(), destination)
	if err != nil {
		return err
	}

	switch format := format.(type) {
	case StreamFormat:
		tracelog.InfoLogger.Printf("decompress: src file: %s, dst file: %s", source, target)
		err = decompressStream(format, source, target)
	case ArchiveFormat:
		tracelog.InfoLogger.Printf("decompress: src file: %s, dst dir: %s", source, target)
		err = handler.makeUnpacker(format).Unpack(source, target)
	}
	if err != nil {
		return err
	}
	tracelog.InfoLogger.Println("done")
	return nil
}

func decompressStream(format StreamFormat, source, target string) (err error) {
	sourceFile, err := os.Open(source)
	if err != nil {
		return newIOError(err, "failed to open source '%s'", source)
	}
	defer utility.LoggedClose(sourceFile, "")

	decoder, err := format.NewDecoder(sourceFile)
	if err != nil {
		return newDecodeError(source, format, err)
	}
	defer utility.LoggedClose(decoder, "")

	targetFile, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if os.IsExist(err) {
		return newPathConflictError(target)
	}
	if err != nil {
		return newIOError(err, "failed to create destination '%s'", target)
	}
	defer func() {
		closeErr := targetFile.Close()
		if err == nil && closeErr != nil {
			err = newIOError(closeErr, "failed to close destination '%s'", target)
		}
		if err != nil {
			if removeErr := os.Remove(target); removeErr != nil {
				tracelog.WarningLogger.Printf("failed to remove partial output '%s': %v", target, removeErr)
			}
		}
	}()

	_, err = utility.FastCopy(targetFile, &decodingReader{decoder})
	if err != nil {
		var readErr decodingReadError
		if errors.As(err, &readErr) {
			return newDecodeError(source, format, readErr.cause)
		}
		return newIOError(err, "failed to write destination '%s'", target)
	}
	return nil
}

// decodingReader tags read failures so that they can be told apart from
// write failures after the copy.
type decodingReader struct {
	io.Reader
}

func (reader *decodingReader) Read(p []byte) (int, error) {
	n, err := reader.Reader.Read(p)
	if err != nil && err != io.EOF {
		return n, decodingReadError{err}
	}
	return n, err
}

type decodingReadError struct {
	cause error
}

func (err decodingReadError) Error() string {
	return err.cause.Error()
}
