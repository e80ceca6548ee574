package models

// Format identifies the binary container of a workbook.
type Format string

const (
	// FormatXLSX is Office Open XML (.xlsx).
	FormatXLSX Format = "xlsx"
	// FormatXLS is the legacy BIFF binary format (.xls).
	FormatXLS Format = "xls"
)

// Workbook represents a decoded workbook with its sheets in workbook order.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Format is the container the workbook was decoded from.
	Format Format `json:"format"`
	// Sheets lists the worksheets in the order they appear in the workbook.
	Sheets []Sheet `json:"sheets"`
}
