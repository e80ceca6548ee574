package models

// Standing is the academic-standing bucket of a student for one column or period.
type Standing string

const (
	// AllPassing means no deficient subject (TODO TEA).
	AllPassing Standing = "all_passing"
	// UpToFiveDeficient means one to five deficient subjects.
	UpToFiveDeficient Standing = "up_to_five_deficient"
	// SixOrMoreDeficient means six or more deficient subjects.
	SixOrMoreDeficient Standing = "six_or_more_deficient"
)

// Standings lists every bucket in report order.
var Standings = []Standing{AllPassing, UpToFiveDeficient, SixOrMoreDeficient}

// Label returns the fixed report label of the bucket.
func (s Standing) Label() string {
	switch s {
	case AllPassing:
		return "TODO TEA"
	case UpToFiveDeficient:
		return "Hasta 5 materias TEP/TED"
	case SixOrMoreDeficient:
		return "6 o más materias TEP/TED"
	default:
		return string(s)
	}
}

// GradeCount tallies period valorations of one student across subjects.
type GradeCount struct {
	TEA int `json:"tea"`
	TEP int `json:"tep"`
	TED int `json:"ted"`
}

// Deficient returns the number of TEP and TED valorations.
func (c GradeCount) Deficient() int {
	return c.TEP + c.TED
}

// Total returns the number of valorated subjects.
func (c GradeCount) Total() int {
	return c.TEA + c.TEP + c.TED
}
