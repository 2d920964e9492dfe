package archive

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"
)

// UnsupportedFormatError is used to signal archive formats that zz
// recognizes but cannot unpack yet.
type UnsupportedFormatError struct {
	error
}

func newUnsupportedFormatError(path string, fileFormat string) UnsupportedFormatError {
	return UnsupportedFormatError{errors.Errorf("zz does not support unpacking the archive format '%s' in '%s' yet", fileFormat, path)}
}

func (err UnsupportedFormatError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

// ExtractError reports a failed unpack. Entries written before the failure
// are left on disk.
type ExtractError struct {
	error
}

func newExtractError(source, destination string, cause error) ExtractError {
	return ExtractError{errors.Wrapf(cause, "failed to unpack '%s' into '%s'", source, destination)}
}

func (err ExtractError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

func (err ExtractError) Unwrap() error {
	return err.error
}

// EntryEscapeError is the cause of an ExtractError for entries whose name or
// link target points outside the destination directory.
type EntryEscapeError struct {
	error
}

func newEntryEscapeError(name string) EntryEscapeError {
	return EntryEscapeError{errors.Errorf("archive entry '%s' points outside the destination directory", name)}
}

func (err EntryEscapeError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}
