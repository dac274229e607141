package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// unknownErrorBody replaces an error response body that could not be read.
const unknownErrorBody = "Unknown error"

// ConfigError means the gateway configuration can't be used, most often
// because no base URL is set. It is returned before any file or network I/O.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Msg
}

// ValidationError wraps local input validation failures.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// FileOpenError means a local attachment could not be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("failed to open file %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// FileReadError means a local attachment was opened but reading it failed.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// FileNameError means no upload file name could be derived from a path.
type FileNameError struct {
	Path string
}

func (e *FileNameError) Error() string {
	return fmt.Sprintf("invalid file name in path %q", e.Path)
}

// TransportError means the request never produced an HTTP response:
// connection refused, DNS failure, timeout and the like.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError means the remote API answered with a status outside 2xx.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

// DecodeError means a successful response body did not match the expected
// shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// retryable reports whether a failed read may be attempted again.
func retryable(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}

	return false
}

// attachmentErrorFormat renders attachment failures on a single line.
func attachmentErrorFormat(es []error) string {
	if len(es) == 1 {
		return es[0].Error()
	}

	msgs := make([]string, len(es))
	for i, err := range es {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d attachments failed: %s", len(es), strings.Join(msgs, "; "))
}
