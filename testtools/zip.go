package testtools

import (
	"bytes"
	"io/fs"

	"github.com/klauspost/compress/zip"
)

type ZipEntry struct {
	*zip.FileHeader
	Body []byte
}

func ZipFile(entries []ZipEntry) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		fw, err := zw.CreateHeader(entry.FileHeader)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(entry.Body); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

func ZipRegular(name, body string) ZipEntry {
	header := &zip.FileHeader{Name: name, Method: zip.Deflate}
	header.SetMode(0644)
	return ZipEntry{header, []byte(body)}
}

func ZipDir(name string) ZipEntry {
	header := &zip.FileHeader{Name: name}
	header.SetMode(fs.ModeDir | 0755)
	return ZipEntry{header, nil}
}
