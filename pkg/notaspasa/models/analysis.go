package models

// StudentSubjects pairs a student with the subjects that made them deficient.
type StudentSubjects struct {
	Student  string   `json:"student"`
	Subjects []string `json:"subjects"`
}

// ColumnAnalysis holds bucket tallies for one grade column.
type ColumnAnalysis struct {
	// ColumnName is the display label of the column.
	ColumnName string `json:"column_name"`
	// Role is the column role.
	Role ColumnRole `json:"role"`
	// AllPassing counts students without deficient subjects.
	AllPassing int `json:"todo_tea"`
	// UpToFive counts students with one to five deficient subjects.
	UpToFive int `json:"hasta5_tep"`
	// SixOrMore counts students with six or more deficient subjects.
	SixOrMore int `json:"mas5_tep"`
	// Unscored counts students without any scored subject in this column.
	Unscored int `json:"unscored"`
	// AllPassingStudents lists the students counted in AllPassing.
	AllPassingStudents []string `json:"todo_tea_students"`
	// UpToFiveStudents lists the students counted in UpToFive with their deficient subjects.
	UpToFiveStudents []StudentSubjects `json:"hasta5_tep_students"`
	// SixOrMoreStudents lists the students counted in SixOrMore with their deficient subjects.
	SixOrMoreStudents []StudentSubjects `json:"mas5_tep_students"`
}

// Scored returns the number of students placed in a bucket.
func (c ColumnAnalysis) Scored() int {
	return c.AllPassing + c.UpToFive + c.SixOrMore
}

// Count returns the tally of bucket s.
func (c ColumnAnalysis) Count(s Standing) int {
	switch s {
	case AllPassing:
		return c.AllPassing
	case UpToFiveDeficient:
		return c.UpToFive
	case SixOrMoreDeficient:
		return c.SixOrMore
	}
	return 0
}

// SheetAnalysis holds the column analysis of a single subject sheet.
type SheetAnalysis struct {
	SheetName     string           `json:"sheet_name"`
	TotalStudents int              `json:"total_students"`
	Columns       []ColumnAnalysis `json:"columns"`
}

// StudentGradeCount is the period tally of one student.
type StudentGradeCount struct {
	Student string     `json:"student"`
	Count   GradeCount `json:"count"`
}

// PeriodAnalysis holds the TEA/TEP/TED-based report of one grading period.
type PeriodAnalysis struct {
	// Role is the preliminary column the period is read from.
	Role ColumnRole `json:"role"`
	// Name is the display label of the period column.
	Name string `json:"name"`
	// TotalSubjects is the subject count a student must pass to be AllPassing.
	TotalSubjects int `json:"total_subjects"`

	AllPassing         int      `json:"all_tea"`
	AllPassingStudents []string `json:"all_tea_students"`
	UpToFive           int      `json:"up_to5_tep_ted"`
	UpToFiveStudents   []string `json:"up_to5_tep_ted_students"`
	SixOrMore          int      `json:"six_or_more_tep_ted"`
	SixOrMoreStudents  []string `json:"six_or_more_tep_ted_students"`
	// Incomplete lists students with no TEP/TED but fewer TEA than TotalSubjects.
	Incomplete []string `json:"incomplete,omitempty"`
	// Students holds every student's tally in roster order.
	Students []StudentGradeCount `json:"students"`
}

// ColumnStats holds descriptive statistics of the numeric grades of a column.
type ColumnStats struct {
	Role       ColumnRole `json:"role"`
	ColumnName string     `json:"column_name"`
	Scored     int        `json:"scored"`
	Mean       float64    `json:"mean"`
	Median     float64    `json:"median"`
	Min        float64    `json:"min"`
	Max        float64    `json:"max"`
}

// Result is the complete outcome of one workbook analysis.
type Result struct {
	// RunID identifies the analysis run in logs.
	RunID string `json:"run_id"`
	// BookName is the workbook file name.
	BookName string `json:"book_name"`
	// Format is the decoded container format.
	Format Format `json:"format"`
	// TotalStudents is the number of distinct canonical students.
	TotalStudents int `json:"total_students"`
	// TotalSubjects is the number of processed subject sheets.
	TotalSubjects int `json:"total_subjects"`
	// Subjects lists processed sheet names in workbook order.
	Subjects []string `json:"subjects"`
	// ExcludedSheets lists sheets skipped by the denylist.
	ExcludedSheets []string `json:"excluded_sheets,omitempty"`
	// EmptySheets lists eligible sheets without any student row.
	EmptySheets []string `json:"empty_sheets,omitempty"`
	// WorkshopSheetPresent reports whether the workbook had a "Taller General" sheet.
	WorkshopSheetPresent bool `json:"has_taller_general"`
	// General is the workbook-wide summary of each column.
	General []ColumnAnalysis `json:"general_summary"`
	// Overall buckets students across the union of all columns.
	Overall ColumnAnalysis `json:"overall"`
	// Sheets holds per-subject column analyses.
	Sheets []SheetAnalysis `json:"sheets,omitempty"`
	// Periods holds the TEA/TEP/TED period report.
	Periods []PeriodAnalysis `json:"periods,omitempty"`
	// Stats holds numeric grade statistics per column.
	Stats []ColumnStats `json:"stats,omitempty"`
	// Students is the roster of canonical identities with merged spellings.
	Students []StudentIdentity `json:"students,omitempty"`
}
