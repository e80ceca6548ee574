package parser

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/names"
)

const (
	// FirstDataRow is the 0-based index of the first student row (row 11).
	FirstDataRow = 10
	// NameColumn is the 0-based column holding the student name (column B).
	NameColumn = 1
	// MinNameLength is the shortest accepted student name, in runes.
	MinNameLength = 3
)

// ExcludedSheetKeywords open the names of non-subject sheets (summaries,
// statistics and instructions). A sheet is excluded only when its folded
// name is a keyword, optionally pluralized and followed by qualifiers
// ("Resumen anual", "Consolidado 1º C"), so subjects such as
// "Probabilidad y Estadística" or "Resumen de Textos" are kept.
var ExcludedSheetKeywords = []string{
	"resumen",
	"sintesis",
	"estadistica",
	"consolidado",
	"instrucciones",
}

// sheetQualifiers may follow an excluded keyword. Tokens containing a
// digit and tokens of at most two runes ("1º", "C") qualify as well.
var sheetQualifiers = []string{
	"de", "del", "la", "las", "los", "el",
	"notas", "calificaciones", "general", "anual", "final",
	"curso", "ano", "cuatrimestre", "cuatrimestral", "trimestre", "periodo",
}

// workshopPattern marks the consolidated workshop sheet anywhere in its name.
const workshopPattern = "taller general"

// NoiseLabels are footer and summary labels found in the name column.
var NoiseLabels = []string{
	"TOTAL DE ESTUDIANTES",
	"APROBADAS/OS",
	"DESAPROBADAS/OS",
	"SIN EVALUAR",
	"TOTAL DE CLASES DE LA MATERIA",
	"CLASES EFECTIVAMENTE DADAS",
}

// transferLabel opens notes about students moving to another school
// ("PASE", "Pase a E.E.S. N° 4"). It is noise only at the start of the cell,
// alone or followed by a preposition or a date.
const transferLabel = "PASE"

// Eligible reports whether a sheet holds subject grades.
func Eligible(sheetName string) bool {
	folded := names.Fold(sheetName)
	if strings.Contains(folded, workshopPattern) {
		return false
	}
	fields := strings.Fields(folded)
	if len(fields) == 0 || !isExcludedKeyword(fields[0]) {
		return true
	}
	for _, f := range fields[1:] {
		if !isQualifier(f) {
			return true
		}
	}
	return false
}

func isExcludedKeyword(word string) bool {
	for _, k := range ExcludedSheetKeywords {
		if word == k || word == k+"s" || word == k+"es" {
			return true
		}
	}
	return false
}

func isQualifier(token string) bool {
	if utf8.RuneCountInString(token) <= 2 || strings.ContainsAny(token, "0123456789") {
		return true
	}
	return slices.Contains(sheetQualifiers, token)
}

// IsWorkshopSheet reports whether sheetName is the "Taller General" sheet.
func IsWorkshopSheet(sheetName string) bool {
	return strings.Contains(names.Fold(sheetName), workshopPattern)
}

// IsNoise reports whether a name cell is a footer or summary label.
// Labels must appear as whole phrases so names such as "Pasero" are kept.
func IsNoise(text string) bool {
	folded := strings.ToUpper(names.Fold(text))
	for _, label := range NoiseLabels {
		if containsPhrase(folded, label) {
			return true
		}
	}
	return isTransferNote(folded)
}

// isTransferNote matches "PASE", "PASE: 12/05" and "PASE A ..." but not a
// student named Pase ("PASE ANA", "ANA PASE").
func isTransferNote(folded string) bool {
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 || words[0] != transferLabel {
		return false
	}
	if len(words) == 1 {
		return true
	}
	switch next := words[1]; next {
	case "A", "AL", "DE", "DEL", "EL", "LA":
		return true
	default:
		return strings.IndexFunc(next, unicode.IsDigit) == 0
	}
}

// ValidName reports whether text can be a student name: at least
// MinNameLength runes, at least one letter, and not a number.
func ValidName(text string) bool {
	t := strings.TrimSpace(text)
	if utf8.RuneCountInString(t) < MinNameLength {
		return false
	}
	if _, err := strconv.ParseFloat(t, 64); err == nil {
		return false
	}
	return strings.IndexFunc(t, unicode.IsLetter) >= 0
}

// ScannedRow is a student row extracted from a subject sheet.
type ScannedRow struct {
	// Row is the 0-based physical row index.
	Row int
	// Name is the trimmed raw student name.
	Name string
	// Grades holds the cell of every analyzed column, blanks included.
	Grades map[models.ColumnRole]models.Cell
}

// ScanStats counts how the rows of a sheet were handled.
type ScanStats struct {
	Rows        int `json:"rows"`
	Students    int `json:"students"`
	Blank       int `json:"blank"`
	Noise       int `json:"noise"`
	InvalidName int `json:"invalid_name"`
}

// Scan lazily yields the student rows of sheet, starting at FirstDataRow.
// Rows without a name, noise rows and invalid names are skipped. When
// stats is not nil it is updated as rows are consumed.
func Scan(sheet models.Sheet, stats *ScanStats) iter.Seq[ScannedRow] {
	if stats == nil {
		stats = &ScanStats{}
	}
	return func(yield func(ScannedRow) bool) {
		for _, row := range sheet.Rows {
			if row.Index < FirstDataRow {
				continue
			}
			stats.Rows++

			name := cellText(row.At(NameColumn))
			switch {
			case name == "":
				stats.Blank++
				continue
			case IsNoise(name):
				stats.Noise++
				continue
			case !ValidName(name):
				stats.InvalidName++
				continue
			}
			stats.Students++

			grades := make(map[models.ColumnRole]models.Cell, len(models.Columns))
			for _, col := range models.Columns {
				grades[col.Role] = row.At(col.Index)
			}
			if !yield(ScannedRow{Row: row.Index, Name: name, Grades: grades}) {
				return
			}
		}
	}
}

func cellText(c models.Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func containsPhrase(s, phrase string) bool {
	for from := 0; from <= len(s)-len(phrase); {
		i := strings.Index(s[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)
		if !letterBefore(s, start) && !letterAfter(s, end) {
			return true
		}
		from = start + 1
	}
	return false
}

func letterBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsLetter(r)
}

func letterAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r)
}
