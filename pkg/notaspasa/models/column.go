package models

// ColumnRole is the fixed semantic meaning of a grade column.
type ColumnRole string

const (
	RoleFirstPeriod  ColumnRole = "first_period"
	RoleSecondPeriod ColumnRole = "second_period"
	RoleDecember     ColumnRole = "december"
	RoleFebruary     ColumnRole = "february"
	RoleFinal        ColumnRole = "final"
)

// ColumnKind decides how a grade cell is interpreted.
type ColumnKind string

const (
	// KindPreliminary columns hold numeric period grades.
	KindPreliminary ColumnKind = "preliminary"
	// KindFinal columns hold numeric grades or CSA/CCA administrative codes.
	KindFinal ColumnKind = "final"
	// KindCalification holds the final certification grade.
	KindCalification ColumnKind = "calification"
)

// Column describes one analyzed spreadsheet column.
type Column struct {
	// Index is the 0-based column position (1 is column B).
	Index int `json:"index"`
	// Letter is the spreadsheet column letter.
	Letter string `json:"letter"`
	// Role is the semantic meaning of the column.
	Role ColumnRole `json:"role"`
	// Name is the display label used in reports.
	Name string `json:"name"`
	// Kind selects the classification rules.
	Kind ColumnKind `json:"kind"`
}

// Columns is the fixed column map of the grade sheets, in report order.
var Columns = []Column{
	{Index: 9, Letter: "J", Role: RoleFirstPeriod, Name: "CALIFICACIÓN 1º CUATRIMESTRE", Kind: KindPreliminary},
	{Index: 17, Letter: "R", Role: RoleSecondPeriod, Name: "CALIFICACIÓN 2º CUATRIMESTRE", Kind: KindPreliminary},
	{Index: 20, Letter: "U", Role: RoleDecember, Name: "DICIEMBRE", Kind: KindFinal},
	{Index: 21, Letter: "V", Role: RoleFebruary, Name: "FEBRERO", Kind: KindFinal},
	{Index: 22, Letter: "W", Role: RoleFinal, Name: "CALIFICACIÓN FINAL", Kind: KindCalification},
}

// ColumnByRole returns the column definition for role.
func ColumnByRole(role ColumnRole) (Column, bool) {
	for _, c := range Columns {
		if c.Role == role {
			return c, true
		}
	}
	return Column{}, false
}
