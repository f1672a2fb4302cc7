// Package utils holds helpers shared by the front ends.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("utils: archive is empty")

var (
	gzipMagic     = []byte{0x1F, 0x8B}
	zipMagic      = []byte("PK\x03\x04")
	sevenZipMagic = []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}
	romExtensions = []string{".gb", ".gbc"}
)

// LoadFile loads the given file and performs decompression if necessary.
// gzip, zip and 7z files are recognised by their extension or their
// magic number, for archives the first ROM in the archive is returned
// (or the first file if none has a ROM extension).
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	// a rom can start with anything, so only sniff other files
	if isROM(filename) {
		return data, nil
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); {
	case ext == ".gz" || bytes.HasPrefix(data, gzipMagic):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "opening gzip")
		}
		defer r.Close()
		return io.ReadAll(r)
	case ext == ".zip" || bytes.HasPrefix(data, zipMagic):
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrap(err, "opening zip")
		}
		files := make([]archiveFile, len(r.File))
		for i, f := range r.File {
			files[i] = f
		}
		return readArchive(files)
	case ext == ".7z" || bytes.HasPrefix(data, sevenZipMagic):
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrap(err, "opening 7z")
		}
		files := make([]archiveFile, len(r.File))
		for i, f := range r.File {
			files[i] = f
		}
		return readArchive(files)
	}

	// return the data as is
	return data, nil
}

// archiveFile is a file inside a zip or 7z archive.
type archiveFile interface {
	FileInfo() os.FileInfo
	Open() (io.ReadCloser, error)
}

// readArchive reads the first ROM in files.
func readArchive(files []archiveFile) ([]byte, error) {
	var entry archiveFile
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		if isROM(f.FileInfo().Name()) {
			entry = f
			break
		}
		if entry == nil {
			entry = f
		}
	}
	if entry == nil {
		return nil, ErrEmptyArchive
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", entry.FileInfo().Name())
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func isROM(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range romExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
