// Package parser decodes workbooks and scans grade sheets.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook indicates there were no bytes to decode.
var ErrEmptyWorkbook = errors.New("empty workbook")

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat sniffs the container of data, falling back to the
// extension of bookName when the content is not recognized.
func DetectFormat(bookName string, data []byte) models.Format {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return models.FormatXLSX
	case bytes.HasPrefix(data, oleMagic):
		return models.FormatXLS
	}
	if strings.EqualFold(filepath.Ext(bookName), ".xls") {
		return models.FormatXLS
	}
	return models.FormatXLSX
}

// Decode reads every sheet of the workbook held in data.
// Any failure is terminal for the whole workbook.
func Decode(bookName string, data []byte) (*models.Workbook, error) {
	if len(data) == 0 {
		return nil, ErrEmptyWorkbook
	}
	format := DetectFormat(bookName, data)

	var (
		sheets []models.Sheet
		err    error
	)
	switch format {
	case models.FormatXLS:
		sheets, err = readXLS(data)
	default:
		sheets, err = readXLSX(data)
	}
	if err != nil {
		return nil, err
	}

	return &models.Workbook{
		BookName: filepath.Base(bookName),
		Format:   format,
		Sheets:   sheets,
	}, nil
}

func readXLSX(data []byte) ([]models.Sheet, error) {
	opts := excelize.Options{RawCellValue: true}
	f, err := excelize.OpenReader(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	var sheets []models.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, opts)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets = append(sheets, models.Sheet{Name: name, Rows: convertRows(rows)})
	}
	return sheets, nil
}

func readXLS(data []byte) (sheets []models.Sheet, err error) {
	// The BIFF reader panics on some malformed records.
	defer func() {
		if r := recover(); r != nil {
			sheets, err = nil, fmt.Errorf("read xls: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		grid := make([][]string, 0, int(ws.MaxRow)+1)
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := xlsRow(ws, r)
			if row == nil {
				grid = append(grid, nil)
				continue
			}
			cells := make([]string, 0, row.LastCol()+1)
			for c := 0; c <= row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			grid = append(grid, cells)
		}
		sheets = append(sheets, models.Sheet{Name: ws.Name, Rows: convertRows(grid)})
	}
	return sheets, nil
}

// xlsRow returns row i of ws, or nil when the sheet has no record for it.
// WorkSheet.Row dereferences the missing entry, so the lookup is guarded.
func xlsRow(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}

// convertRows turns a decoded string grid into typed rows. Blank rows are
// kept so that row indices match physical positions.
func convertRows(grid [][]string) []models.RawRow {
	rows := make([]models.RawRow, len(grid))
	for i, row := range grid {
		cells := make([]models.Cell, len(row))
		for j, v := range row {
			cells[j] = parseValue(v)
		}
		rows[i] = models.RawRow{Index: i, Cells: cells}
	}
	return rows
}

// parseValue attempts to parse a string value as a number.
// Returns nil for blank cells, int64 for integers, float64 for decimals,
// or the original string.
func parseValue(s string) models.Cell {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	if !looksNumeric(t) {
		return s
	}
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return f
	}
	return s
}

// looksNumeric keeps words such as "NaN" or "Inf" out of ParseFloat.
func looksNumeric(s string) bool {
	switch c := s[0]; {
	case c >= '0' && c <= '9', c == '-', c == '+', c == '.':
		return strings.ContainsAny(s, "0123456789")
	}
	return false
}
