package models

// StudentRecord is the aggregated grade record of one canonical student.
type StudentRecord struct {
	// Name is the canonical spelling (first seen in the workbook).
	Name string `json:"name"`
	// Aliases lists the other raw spellings merged into Name.
	Aliases []string `json:"aliases,omitempty"`
	// Subjects lists the subjects (sheet names) the student appears in, in sheet order.
	Subjects []string `json:"subjects"`
	// Grades maps subject to column role to the raw cell value.
	Grades map[string]map[ColumnRole]Cell `json:"grades"`
}

// Grade returns the raw cell of subject and role, or nil.
func (r *StudentRecord) Grade(subject string, role ColumnRole) Cell {
	cells, ok := r.Grades[subject]
	if !ok {
		return nil
	}
	return cells[role]
}

// HasSubject reports whether the student has a row in subject.
func (r *StudentRecord) HasSubject(subject string) bool {
	_, ok := r.Grades[subject]
	return ok
}

// StudentIdentity is the roster entry of a canonical student.
type StudentIdentity struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	Subjects []string `json:"subjects"`
}
