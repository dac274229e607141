package gateway

import (
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// FilePart is a named binary part ready for inclusion in a multipart form.
type FilePart struct {
	// FileName is the final segment of the source path, sent as the uploaded
	// file name.
	FileName string

	// Data holds the complete file contents.
	Data []byte
}

// NewFilePart reads r to completion and wraps the contents with the file name
// derived from path. The whole file is held in memory; there is no size cap.
func NewFilePart(r io.Reader, path string) (*FilePart, error) {
	name, err := fileName(path)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	return &FilePart{
		FileName: name,
		Data:     data,
	}, nil
}

// fileName returns the final path segment of path.
func fileName(path string) (string, error) {
	if path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return "", &FileNameError{Path: path}
	}

	name := filepath.Base(path)
	switch name {
	case ".", "..", "/":
		return "", &FileNameError{Path: path}
	}
	if name == string(filepath.Separator) {
		return "", &FileNameError{Path: path}
	}

	if !utf8.ValidString(name) {
		return "", &FileNameError{Path: path}
	}

	return name, nil
}
