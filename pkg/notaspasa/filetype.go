package notaspasa

import (
	"mime"
	"path/filepath"
	"slices"
	"strings"
)

// AllowedExtensions are the accepted workbook file extensions.
var AllowedExtensions = []string{".xlsx", ".xls"}

// AllowedMIMETypes are the accepted workbook media types.
var AllowedMIMETypes = []string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-excel",
}

// CheckFileType accepts a workbook by extension or media type. Excel lock
// files ("~$name.xlsx") are always rejected.
func CheckFileType(name, mimeType string) error {
	base := filepath.Base(name)
	if strings.HasPrefix(base, "~$") {
		return &FileTypeError{Name: name, MIME: mimeType}
	}
	if slices.Contains(AllowedExtensions, strings.ToLower(filepath.Ext(base))) {
		return nil
	}
	if mt, _, err := mime.ParseMediaType(mimeType); err == nil && slices.Contains(AllowedMIMETypes, mt) {
		return nil
	}
	return &FileTypeError{Name: name, MIME: mimeType}
}
