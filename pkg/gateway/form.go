package gateway

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// form is a multipart request body assembled in three stages:
//
//  1. gather: text fields and attachment paths are recorded in order.
//  2. load: every attachment is opened and read. Failures are collected so
//     the caller sees every bad path at once.
//  3. encode: only a fully loaded form is turned into a request body.
//
// Nothing is sent unless load succeeds for every attachment.
type form struct {
	fields      [][2]string
	attachments []attachment
}

type attachment struct {
	field string
	path  string
	part  *FilePart
}

func newForm() *form {
	return &form{}
}

// addField appends a text field.
func (f *form) addField(name, value string) *form {
	f.fields = append(f.fields, [2]string{name, value})
	return f
}

// addFile appends an attachment. Repeated field names are allowed and keep
// their order.
func (f *form) addFile(field, path string) *form {
	f.attachments = append(f.attachments, attachment{field: field, path: path})
	return f
}

// load opens and reads every attachment through fs.
func (f *form) load(fs afero.Fs) error {
	var result *multierror.Error

	for i := range f.attachments {
		a := &f.attachments[i]

		part, err := loadFilePart(fs, a.path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		a.part = part
	}

	if result != nil {
		result.ErrorFormat = attachmentErrorFormat
	}
	return result.ErrorOrNil()
}

func loadFilePart(fs afero.Fs, path string) (*FilePart, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer file.Close()

	return NewFilePart(file, path)
}

// encode writes the form as multipart/form-data and returns the body and its
// content type. Text fields come first, then file parts.
func (f *form) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %q: %w", field[0], err)
		}
	}

	for _, a := range f.attachments {
		if a.part == nil {
			return nil, "", fmt.Errorf("attachment %s was not loaded", a.path)
		}

		pw, err := w.CreateFormFile(a.field, a.part.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form part %q: %w", a.field, err)
		}
		if _, err := pw.Write(a.part.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write form part %q: %w", a.field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
