package internal

import (
	"os"
	"path/filepath"

	"github.com/wal-g/zz/utility"
)

// ResolveDestination computes where the decoded content of source goes.
// An empty destination selects the default: the sibling path without the
// extension for streams, the source's own directory for archives.
//
// A destination that does not exist is used as is. An existing directory
// gets one more level named after the source stem. An existing regular
// file is a PathConflictError.
func ResolveDestination(source string, class FormatClass, destination string) (string, error) {
	stem := utility.GetFileStem(source)
	if destination == "" {
		switch class {
		case StreamClass:
			destination = utility.TrimFileExtension(source)
		case ArchiveClass:
			destination = filepath.Dir(source)
		}
	}

	exists, isDir, err := statPath(destination)
	if err != nil {
		return "", err
	}
	if !exists {
		return destination, nil
	}
	if !isDir {
		return "", newPathConflictError(destination)
	}

	nested := filepath.Join(destination, stem)
	exists, isDir, err = statPath(nested)
	if err != nil {
		return "", err
	}
	switch {
	case !exists:
		return nested, nil
	case class == ArchiveClass && isDir:
		// entries inside are overwritten one by one
		return nested, nil
	default:
		return "", newPathConflictError(nested)
	}
}

func statPath(path string) (exists bool, isDir bool, err error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, false, nil
	}
	if err != nil {
		return false, false, newIOError(err, "failed to stat '%s'", path)
	}
	return true, info.IsDir(), nil
}
