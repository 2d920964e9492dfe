package testtools

import (
	"archive/tar"
	"bytes"
)

type TarEntry struct {
	*tar.Header
	Body []byte
}

// TarFile builds an uncompressed tar stream. Header sizes are taken from the
// bodies.
func TarFile(entries []TarEntry) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	tw := tar.NewWriter(buf)
	for _, entry := range entries {
		entry.Header.Size = int64(len(entry.Body))
		if entry.Header.Mode == 0 {
			entry.Header.Mode = 0644
		}
		if err := tw.WriteHeader(entry.Header); err != nil {
			return nil, err
		}
		if _, err := tw.Write(entry.Body); err != nil {
			return nil, err
		}
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

func TarRegular(name, body string) TarEntry {
	return TarEntry{&tar.Header{Name: name, Typeflag: tar.TypeReg, Mode: 0644}, []byte(body)}
}

func TarDir(name string) TarEntry {
	return TarEntry{&tar.Header{Name: name, Typeflag: tar.TypeDir, Mode: 0755}, nil}
}
