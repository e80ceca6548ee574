package notaspasa

import (
	"errors"
	"fmt"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
)

// ErrUnsupportedFileType indicates the upload is not an Excel workbook.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ErrDecodeFailed indicates the workbook bytes could not be decoded.
var ErrDecodeFailed = errors.New("workbook could not be decoded")

// FileTypeError reports an upload rejected by the file-type allowlist.
type FileTypeError struct {
	Name string
	MIME string
}

func (e *FileTypeError) Error() string {
	if e.MIME != "" {
		return fmt.Sprintf("%v: %q (%s), expected .xlsx or .xls", ErrUnsupportedFileType, e.Name, e.MIME)
	}
	return fmt.Sprintf("%v: %q, expected .xlsx or .xls", ErrUnsupportedFileType, e.Name)
}

func (e *FileTypeError) Unwrap() error {
	return ErrUnsupportedFileType
}

// DecodeError represents a terminal failure while decoding a workbook.
type DecodeError struct {
	BookName string
	Format   models.Format
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s workbook %q: %v", e.Format, e.BookName, e.Err)
}

// Unwrap exposes both ErrDecodeFailed and the decoder error.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecodeFailed, e.Err}
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(bookName string, format models.Format, err error) *DecodeError {
	return &DecodeError{
		BookName: bookName,
		Format:   format,
		Err:      err,
	}
}
