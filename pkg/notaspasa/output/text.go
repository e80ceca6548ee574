package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
)

const (
	reportTitle = "REPORTE DE ANÁLISIS DE CALIFICACIONES"
	ruleWidth   = 50
)

// WriteText writes the plain-text report: every analyzed sheet with its
// student count and per-column bucket counts, followed by the general
// summary of the workbook.
func WriteText(w io.Writer, res *models.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, reportTitle)
	fmt.Fprintln(bw, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(bw)

	for _, sheet := range res.Sheets {
		fmt.Fprintf(bw, "\nHOJA: %s\n", sheet.SheetName)
		fmt.Fprintln(bw, strings.Repeat("-", ruleWidth))
		fmt.Fprintf(bw, "Total de estudiantes procesados: %d\n\n", sheet.TotalStudents)
		writeColumns(bw, sheet.Columns)
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "\nRESUMEN GENERAL")
	fmt.Fprintln(bw, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(bw, "Total de estudiantes: %d\n", res.TotalStudents)
	fmt.Fprintf(bw, "Total de materias: %d\n", res.TotalSubjects)
	if len(res.ExcludedSheets) > 0 {
		fmt.Fprintf(bw, "Hojas excluidas: %s\n", strings.Join(res.ExcludedSheets, ", "))
	}
	fmt.Fprintln(bw)
	writeColumns(bw, res.General)
	writeColumn(bw, res.Overall)

	return bw.Flush()
}

func writeColumns(w io.Writer, cols []models.ColumnAnalysis) {
	for _, col := range cols {
		writeColumn(w, col)
	}
}

func writeColumn(w io.Writer, col models.ColumnAnalysis) {
	fmt.Fprintf(w, "\n%s:\n", col.ColumnName)
	for _, s := range models.Standings {
		fmt.Fprintf(w, "  - %s: %d\n", s.Label(), col.Count(s))
	}
	if col.Unscored > 0 {
		fmt.Fprintf(w, "  - Sin calificar: %d\n", col.Unscored)
	}
}
