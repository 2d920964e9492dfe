package archive

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"
	"github.com/wal-g/zz/utility"
)

type EntryType int

const (
	RegularEntry EntryType = iota
	DirectoryEntry
	SymlinkEntry
	HardlinkEntry
)

// Entry is a format-neutral view of one archive member. Name and Linkname
// use forward slashes.
type Entry struct {
	Name     string
	Type     EntryType
	Mode     fs.FileMode
	Linkname string
}

// EntryInterpreter behaves differently
// for different entry types.
type EntryInterpreter interface {
	Interpret(reader io.Reader, entry Entry) error
}

// FileEntryInterpreter extracts entries to disk under DirectoryToSave.
type FileEntryInterpreter struct {
	DirectoryToSave string
	fsync           bool
}

func NewFileEntryInterpreter(directoryToSave string, fsync bool) *FileEntryInterpreter {
	return &FileEntryInterpreter{
		DirectoryToSave: directoryToSave,
		fsync:           fsync,
	}
}

// Interpret writes one entry, creating missing parent directories.
// Existing files at the same path are overwritten.
func (interpreter *FileEntryInterpreter) Interpret(reader io.Reader, entry Entry) error {
	tracelog.DebugLogger.Println("Interpreting: ", entry.Name)
	if !isLocalName(entry.Name) {
		return newEntryEscapeError(entry.Name)
	}

	switch entry.Type {
	case RegularEntry:
		targetPath, err := interpreter.resolve(entry.Name)
		if err != nil {
			return err
		}
		return interpreter.interpretRegularFile(targetPath, entry, reader)
	case DirectoryEntry:
		targetPath, err := interpreter.resolve(entry.Name)
		if err != nil {
			return err
		}
		err = os.MkdirAll(targetPath, 0755)
		if err != nil {
			return errors.Wrapf(err, "Interpret: failed to create all directories in %s", targetPath)
		}
		if perm := entry.Mode.Perm(); perm != 0 {
			if err = os.Chmod(targetPath, perm|0700); err != nil {
				return errors.Wrap(err, "Interpret: chmod failed")
			}
		}
	case SymlinkEntry:
		if filepath.IsAbs(entry.Linkname) {
			return newEntryEscapeError(entry.Name)
		}
		targetPath, err := interpreter.resolveLinkPath(entry.Name)
		if err != nil {
			return err
		}
		// the parent may itself be a link extracted earlier, so the target is
		// checked against where the link really lands
		if !interpreter.isLocalLink(targetPath, entry.Linkname) {
			return newEntryEscapeError(entry.Name)
		}
		if err = removeExisting(targetPath); err != nil {
			return err
		}
		if err = os.Symlink(entry.Linkname, targetPath); err != nil {
			return errors.Wrapf(err, "Interpret: failed to create symlink %s", targetPath)
		}
	case HardlinkEntry:
		if !isLocalName(entry.Linkname) {
			return newEntryEscapeError(entry.Name)
		}
		oldPath, err := interpreter.resolve(entry.Linkname)
		if err != nil {
			return err
		}
		targetPath, err := interpreter.resolveLinkPath(entry.Name)
		if err != nil {
			return err
		}
		if targetPath == oldPath {
			return nil
		}
		if err = removeExisting(targetPath); err != nil {
			return err
		}
		if err = os.Link(oldPath, targetPath); err != nil {
			return errors.Wrapf(err, "Interpret: failed to create hardlink %s", targetPath)
		}
	}
	return nil
}

func (interpreter *FileEntryInterpreter) interpretRegularFile(targetPath string, entry Entry, reader io.Reader) error {
	err := os.MkdirAll(filepath.Dir(targetPath), 0755)
	if err != nil {
		return errors.Wrap(err, "Interpret: failed to create all directories")
	}
	perm := entry.Mode.Perm()
	if perm == 0 {
		perm = 0644
	}
	localFile, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(err, "failed to create new file: '%s'", targetPath)
	}
	defer utility.LoggedClose(localFile, "")

	_, err = utility.FastCopy(localFile, reader)
	if err != nil {
		return errors.Wrapf(err, "Interpret: copy to '%s' failed", targetPath)
	}
	if err = localFile.Chmod(perm); err != nil {
		return errors.Wrap(err, "Interpret: chmod failed")
	}
	utility.LoggedSync(localFile, "", interpreter.fsync)
	return nil
}

// resolve maps an archive name to a path inside DirectoryToSave. Symlinks
// already extracted are followed but never lead outside the directory.
func (interpreter *FileEntryInterpreter) resolve(name string) (string, error) {
	targetPath, err := securejoin.SecureJoin(interpreter.DirectoryToSave, filepath.FromSlash(name))
	return targetPath, errors.Wrapf(err, "Interpret: failed to resolve entry '%s'", name)
}

// resolveLinkPath is resolve for the parent only: the link itself must not
// be followed.
func (interpreter *FileEntryInterpreter) resolveLinkPath(name string) (string, error) {
	localName := filepath.FromSlash(name)
	dir, err := interpreter.resolve(filepath.ToSlash(filepath.Dir(localName)))
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "Interpret: failed to create all directories")
	}
	return filepath.Join(dir, filepath.Base(localName)), nil
}

// isLocalLink reports whether a symlink created at linkPath with the given
// target stays inside DirectoryToSave.
func (interpreter *FileEntryInterpreter) isLocalLink(linkPath, linkname string) bool {
	rel, err := filepath.Rel(interpreter.DirectoryToSave, filepath.Dir(linkPath))
	if err != nil {
		return false
	}
	return isLocalName(filepath.ToSlash(filepath.Join(rel, filepath.FromSlash(linkname))))
}

// removeExisting clears a file or link left at path by an earlier
// extraction. Directories are kept.
func removeExisting(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "Interpret: failed to stat %s", path)
	}
	if info.IsDir() {
		return nil
	}
	return errors.Wrapf(os.Remove(path), "Interpret: failed to replace %s", path)
}

func isLocalName(name string) bool {
	return name != "" && filepath.IsLocal(filepath.FromSlash(name))
}
