package notaspasa

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/xuri/excelize/v2"
)

// student is one row of a fixture sheet: name plus grades for columns
// J, R, U, V and W.
type student struct {
	name   any
	grades []any
}

type sheetFixture struct {
	name string
	rows []student
}

var gradeColumns = []string{"J", "R", "U", "V", "W"}

// buildWorkbook writes the fixture sheets, in order, to an in-memory xlsx.
// Student rows start at row 11 below a header block.
func buildWorkbook(t *testing.T, sheets ...sheetFixture) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			t.Fatalf("Failed to add sheet %q: %v", sh.name, err)
		}

		f.SetCellValue(sh.name, "B2", "ESCUELA DE EDUCACIÓN SECUNDARIA TÉCNICA")
		f.SetCellValue(sh.name, "B10", "APELLIDO Y NOMBRE")
		f.SetCellValue(sh.name, "J10", "1º C")

		for r, st := range sh.rows {
			row := 11 + r
			if st.name != nil {
				f.SetCellValue(sh.name, fmt.Sprintf("B%d", row), st.name)
			}
			for c, g := range st.grades {
				if g == nil {
					continue
				}
				f.SetCellValue(sh.name, fmt.Sprintf("%s%d", gradeColumns[c], row), g)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

func quietOptions(mode Mode) Options {
	return Options{
		Mode:   mode,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
