package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
)

// gradeRow builds a row with name in column B and the given cells at the
// fixed grade columns (first period, second period, december, february, final).
func gradeRow(index int, name models.Cell, grades ...models.Cell) models.RawRow {
	cells := make([]models.Cell, 23)
	cells[NameColumn] = name
	for i, g := range grades {
		cells[models.Columns[i].Index] = g
	}
	return models.RawRow{Index: index, Cells: cells}
}

func headerRows() []models.RawRow {
	rows := make([]models.RawRow, FirstDataRow)
	for i := range rows {
		rows[i] = models.RawRow{Index: i, Cells: []models.Cell{nil, "APELLIDO Y NOMBRE"}}
	}
	return rows
}

func collect(sheet models.Sheet, stats *ScanStats) []ScannedRow {
	var out []ScannedRow
	for r := range Scan(sheet, stats) {
		out = append(out, r)
	}
	return out
}

func TestEligible(t *testing.T) {
	tests := []struct {
		sheet string
		want  bool
	}{
		{"Matemática", true},
		{"Lenguajes Tecnológicos I", true},
		{"Taller General", false},
		{"  TALLER   general 2º año", false},
		{"Resumen", false},
		{"Síntesis anual", false},
		{"Estadísticas", false},
		{"Consolidado 1º C", false},
		{"Instrucciones", false},
		{"Resumen anual", false},
		{"Resúmenes de notas", false},
		{"Probabilidad y Estadística", true},
		{"Matemática y Estadística", true},
		{"Estadística Aplicada", true},
		{"Resumen de Textos", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Eligible(tt.sheet), "Eligible(%q)", tt.sheet)
	}
}

func TestIsWorkshopSheet(t *testing.T) {
	assert.True(t, IsWorkshopSheet("Taller  General"))
	assert.False(t, IsWorkshopSheet("Taller de Electricidad"))
}

func TestIsNoise(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"TOTAL DE ESTUDIANTES: 25", true},
		{"Total de estudiantes", true},
		{"APROBADAS/OS", true},
		{"desaprobadas/os 3", true},
		{"Sin evaluar", true},
		{"PASE", true},
		{"Pase a otra escuela", true},
		{"Clases efectivamente dadas", true},
		{"PASE: 12/05", true},
		{"Pase al turno tarde", true},
		{"Pasero, Juan", false},
		{"Ana Pase", false},
		{"Pase Ana", false},
		{"Gómez Ana", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNoise(tt.text), "IsNoise(%q)", tt.text)
	}
}

func TestScan_KeepsStudentNamedPase(t *testing.T) {
	sheet := models.Sheet{Name: "Lengua", Rows: []models.RawRow{
		{Index: 10, Cells: []models.Cell{nil, "Ana Pase", nil, nil, nil, nil, nil, nil, nil, int64(8)}},
		{Index: 11, Cells: []models.Cell{nil, "PASE a E.E.S. N° 4"}},
	}}

	var got []string
	for row := range Scan(sheet, nil) {
		got = append(got, row.Name)
	}
	assert.Equal(t, []string{"Ana Pase"}, got)
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Ana"))
	assert.True(t, ValidName("  Pérez, Juan "))
	assert.False(t, ValidName("Al"))
	assert.False(t, ValidName("123"))
	assert.False(t, ValidName("12.5"))
	assert.False(t, ValidName("---"))
	assert.False(t, ValidName(""))
}

func TestScan(t *testing.T) {
	rows := headerRows()
	rows = append(rows,
		gradeRow(10, "Gómez Ana", int64(8), int64(6), nil, nil, int64(7)),
		gradeRow(11, nil, int64(9)),
		gradeRow(12, "TOTAL DE ESTUDIANTES: 25", int64(25)),
		gradeRow(13, "12", int64(7)),
		gradeRow(14, "  Pasero Luis ", "ausente", nil, "CSA"),
	)
	sheet := models.Sheet{Name: "Historia", Rows: rows}

	var stats ScanStats
	got := collect(sheet, &stats)

	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Row)
	assert.Equal(t, "Gómez Ana", got[0].Name)
	assert.Equal(t, int64(8), got[0].Grades[models.RoleFirstPeriod])
	assert.Equal(t, int64(6), got[0].Grades[models.RoleSecondPeriod])
	assert.Nil(t, got[0].Grades[models.RoleDecember])
	assert.Equal(t, int64(7), got[0].Grades[models.RoleFinal])
	assert.Len(t, got[0].Grades, len(models.Columns))

	assert.Equal(t, "Pasero Luis", got[1].Name)
	assert.Equal(t, "CSA", got[1].Grades[models.RoleDecember])

	assert.Equal(t, ScanStats{Rows: 5, Students: 2, Blank: 1, Noise: 1, InvalidName: 1}, stats)
}

func TestScan_SkipsHeaderRows(t *testing.T) {
	rows := []models.RawRow{
		gradeRow(0, "Escuela Técnica N° 1"),
		gradeRow(9, "Docente: Marta Ruiz", int64(5)),
	}
	assert.Empty(t, collect(models.Sheet{Name: "Física", Rows: rows}, nil))
}

func TestScan_ShortRows(t *testing.T) {
	rows := append(headerRows(), models.RawRow{Index: 10, Cells: []models.Cell{nil, "Díaz Carla"}})
	got := collect(models.Sheet{Name: "Química", Rows: rows}, nil)

	require.Len(t, got, 1)
	for _, col := range models.Columns {
		assert.Nil(t, got[0].Grades[col.Role])
	}
}

func TestScan_StopsWhenConsumerStops(t *testing.T) {
	rows := append(headerRows(),
		gradeRow(10, "Gómez Ana", int64(8)),
		gradeRow(11, "Díaz Carla", int64(8)),
	)
	var stats ScanStats
	for range Scan(models.Sheet{Name: "Arte", Rows: rows}, &stats) {
		break
	}
	assert.Equal(t, 1, stats.Students)
}
