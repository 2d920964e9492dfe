package utility

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wal-g/tracelog"
)

const CopiedBlockMaxSize = 4 << 20

func LoggedClose(c io.Closer, errmsg string) {
	err := c.Close()
	if errmsg == "" {
		errmsg = "Problem with closing object"
	}
	if err != nil {
		tracelog.ErrorLogger.Printf(errmsg+": %v", err)
	}
}

func LoggedSync(file *os.File, errmsg string, fsync bool) {
	if !fsync {
		return
	}
	err := file.Sync()
	if errmsg == "" {
		errmsg = "Problem with file sync"
	}
	if err != nil {
		tracelog.ErrorLogger.Printf(errmsg+": %v", err)
	}
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// GetFileExtension returns the final extension of filePath without the dot.
// Names that only start with a dot (".bashrc") and names ending with a dot
// have no extension.
func GetFileExtension(filePath string) string {
	base := filepath.Base(filePath)
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 || dot == len(base)-1 {
		return ""
	}
	return base[dot+1:]
}

func TrimFileExtension(filePath string) string {
	ext := GetFileExtension(filePath)
	if ext == "" {
		return filePath
	}
	return strings.TrimSuffix(filePath, "."+ext)
}

// GetFileStem is the base name of filePath without its final extension.
func GetFileStem(filePath string) string {
	return TrimFileExtension(filepath.Base(filePath))
}

// FastCopy copies data from src to dst in blocks of CopiedBlockMaxSize bytes
func FastCopy(dst io.Writer, src io.Reader) (int64, error) {
	n := int64(0)
	buf := make([]byte, CopiedBlockMaxSize)
	for {
		m, readingErr := src.Read(buf)
		if readingErr != nil && readingErr != io.EOF {
			return n, readingErr
		}
		m, writingErr := dst.Write(buf[:m])
		n += int64(m)
		if writingErr != nil || readingErr == io.EOF {
			return n, writingErr
		}
	}
}
