package internal

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"
)

// ClassificationError is returned when the source has no extension or its
// extension matches no known format.
type ClassificationError struct {
	error
}

func newNoExtensionError(source string) ClassificationError {
	return ClassificationError{errors.Errorf("no extension detected: '%s'", source)}
}

func newUnknownFormatError(source string, token string) ClassificationError {
	return ClassificationError{errors.Errorf("no compression detected: '%s' in '%s'", token, source)}
}

func (err ClassificationError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

// PathConflictError is returned when the destination already exists with a
// kind that cannot be written to.
type PathConflictError struct {
	error
}

func newPathConflictError(destination string) PathConflictError {
	return PathConflictError{errors.Errorf("the destination '%s' already exists", destination)}
}

func (err PathConflictError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

// DecodeError is returned when a stream codec meets corrupt or truncated input.
type DecodeError struct {
	error
}

func newDecodeError(source string, format StreamFormat, cause error) DecodeError {
	return DecodeError{errors.Wrapf(cause, "failed to decode '%s' as %s", source, format)}
}

func (err DecodeError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

func (err DecodeError) Unwrap() error {
	return err.error
}

// IOError is returned for filesystem failures outside of codec work.
type IOError struct {
	error
}

func newIOError(cause error, format string, args ...interface{}) IOError {
	return IOError{errors.Wrapf(cause, format, args...)}
}

func (err IOError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

func (err IOError) Unwrap() error {
	return err.error
}

type DuplicateFormatTokenError struct {
	error
}

func newDuplicateFormatTokenError(token string, first, second FormatDescriptor) DuplicateFormatTokenError {
	return DuplicateFormatTokenError{errors.Errorf("format token '%s' is declared twice: as %s and as %s",
		token, first.Class(), second.Class())}
}

func (err DuplicateFormatTokenError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

type NoFilesToDecompressError struct {
	error
}

func newNoFilesToDecompressError() NoFilesToDecompressError {
	return NoFilesToDecompressError{errors.New("DecompressAll: did not provide files to decompress")}
}

func (err NoFilesToDecompressError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}
