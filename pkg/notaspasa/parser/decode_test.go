package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
	"github.com/xuri/excelize/v2"
)

func TestDecodeXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "B4", "Text")
	if _, err := f.NewSheet("Matemática"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetCellValue("Matemática", "B11", "Pérez Juan")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write test workbook: %v", err)
	}

	wb, err := Decode("/tmp/uploads/notas.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if wb.BookName != "notas.xlsx" {
		t.Errorf("Expected book name 'notas.xlsx', got %q", wb.BookName)
	}
	if wb.Format != models.FormatXLSX {
		t.Errorf("Expected xlsx format, got %q", wb.Format)
	}
	if len(wb.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(wb.Sheets))
	}
	if wb.Sheets[0].Name != sheetName || wb.Sheets[1].Name != "Matemática" {
		t.Errorf("Unexpected sheet order: %q, %q", wb.Sheets[0].Name, wb.Sheets[1].Name)
	}

	rows := wb.Sheets[0].Rows
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows (blank row kept), got %d", len(rows))
	}
	if rows[0].At(0) != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0].At(0))
	}
	if rows[1].At(0) != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1].At(0), rows[1].At(0))
	}
	if rows[1].At(1) != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1].At(1))
	}
	if rows[3].Index != 3 || rows[3].At(0) != nil || rows[3].At(1) != "Text" {
		t.Errorf("Unexpected row 4: %+v", rows[3])
	}

	subject := wb.Sheets[1].Rows
	if len(subject) != 11 || subject[10].At(NameColumn) != "Pérez Juan" {
		t.Errorf("Expected name at B11, got %+v", subject)
	}
}

func TestDecodeXLS(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "grades.xls"))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	wb, err := Decode("grades.xls", data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if wb.Format != models.FormatXLS {
		t.Errorf("Expected xls format, got %q", wb.Format)
	}
	if len(wb.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(wb.Sheets))
	}
	if wb.Sheets[0].Name != "Matemática" || wb.Sheets[1].Name != "Lengua" {
		t.Errorf("Unexpected sheet names: %q, %q", wb.Sheets[0].Name, wb.Sheets[1].Name)
	}

	// Rows without records (0, 2-8, 12) are kept as blank rows.
	rows := wb.Sheets[0].Rows
	if len(rows) != 14 {
		t.Fatalf("Expected 14 rows, got %d", len(rows))
	}
	if rows[0].At(NameColumn) != nil || rows[12].At(NameColumn) != nil {
		t.Errorf("Expected blank rows 1 and 13, got %+v / %+v", rows[0], rows[12])
	}

	tests := []struct {
		row, col int
		want     models.Cell
	}{
		{10, NameColumn, "Gómez Ana"},
		{10, 9, int64(8)},
		{10, 17, int64(9)},
		{10, 20, nil},
		{10, 22, 8.5},
		{11, NameColumn, "Sosa Bruno"},
		{11, 20, "CSA"},
		{11, 21, int64(7)},
		{13, NameColumn, "TOTAL DE ESTUDIANTES: 2"},
	}
	for _, tt := range tests {
		if got := rows[tt.row].At(tt.col); got != tt.want {
			t.Errorf("Row %d col %d: expected %v (%T), got %v (%T)", tt.row, tt.col, tt.want, tt.want, got, got)
		}
	}

	lengua := wb.Sheets[1].Rows
	if len(lengua) != 11 || lengua[10].At(NameColumn) != "Gomez Ana" || lengua[10].At(9) != 6.5 {
		t.Errorf("Unexpected Lengua rows: %+v", lengua)
	}

	var names []string
	for row := range Scan(wb.Sheets[0], nil) {
		names = append(names, row.Name)
	}
	if len(names) != 2 || names[0] != "Gómez Ana" || names[1] != "Sosa Bruno" {
		t.Errorf("Expected the two student rows, got %v", names)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("not a workbook")},
		{"truncated zip", []byte("PK\x03\x04garbage")},
		{"truncated ole", append(append([]byte{}, oleMagic...), 0x00, 0x01, 0x02)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb, err := Decode("notas.xlsx", tt.data)
			if err == nil {
				t.Fatalf("Expected error, got workbook %+v", wb)
			}
		})
	}

	if _, err := Decode("notas.xlsx", nil); !errors.Is(err, ErrEmptyWorkbook) {
		t.Errorf("Expected ErrEmptyWorkbook, got %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		bookName string
		data     []byte
		expected models.Format
	}{
		{"a.xls", []byte("PK\x03\x04rest"), models.FormatXLSX},
		{"a.xlsx", append(append([]byte{}, oleMagic...), 0x00), models.FormatXLS},
		{"a.XLS", []byte("????"), models.FormatXLS},
		{"a.xlsx", []byte("????"), models.FormatXLSX},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.bookName, tt.data); got != tt.expected {
			t.Errorf("DetectFormat(%q) = %q, expected %q", tt.bookName, got, tt.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Cell
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{" 7 ", int64(7)},
		{"hello", "hello"},
		{"NaN", "NaN"},
		{"-Inf", "-Inf"},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
