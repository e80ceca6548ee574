package summary

import (
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/grading"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
)

// PeriodRoles are the columns read by the period report.
var PeriodRoles = []models.ColumnRole{models.RoleFirstPeriod, models.RoleSecondPeriod}

// Periods builds the TEA/TEP/TED report for every period column.
func Periods(records []*models.StudentRecord, totalSubjects int) []models.PeriodAnalysis {
	out := make([]models.PeriodAnalysis, 0, len(PeriodRoles))
	for _, role := range PeriodRoles {
		col, _ := models.ColumnByRole(role)
		out = append(out, AnalyzePeriod(col, records, totalSubjects))
	}
	return out
}

// AnalyzePeriod tallies TEA, TEP and TED per student for one period.
// A student is AllPassing only when every one of totalSubjects is TEA.
// Students with no TEP/TED but missing valorations are Incomplete and
// belong to no bucket; students without any valoration are skipped.
func AnalyzePeriod(col models.Column, records []*models.StudentRecord, totalSubjects int) models.PeriodAnalysis {
	pa := models.PeriodAnalysis{
		Role:               col.Role,
		Name:               col.Name,
		TotalSubjects:      totalSubjects,
		AllPassingStudents: []string{},
		UpToFiveStudents:   []string{},
		SixOrMoreStudents:  []string{},
		Students:           []models.StudentGradeCount{},
	}

	for _, rec := range records {
		count := Tally(rec, col)
		if count.Total() == 0 {
			continue
		}
		pa.Students = append(pa.Students, models.StudentGradeCount{Student: rec.Name, Count: count})

		if count.Deficient() == 0 {
			if count.TEA == totalSubjects {
				pa.AllPassing++
				pa.AllPassingStudents = append(pa.AllPassingStudents, rec.Name)
			} else {
				pa.Incomplete = append(pa.Incomplete, rec.Name)
			}
			continue
		}

		switch Bucket(count.Deficient()) {
		case models.UpToFiveDeficient:
			pa.UpToFive++
			pa.UpToFiveStudents = append(pa.UpToFiveStudents, rec.Name)
		case models.SixOrMoreDeficient:
			pa.SixOrMore++
			pa.SixOrMoreStudents = append(pa.SixOrMoreStudents, rec.Name)
		}
	}
	return pa
}

// Tally counts the valorations of rec in column col across its subjects.
func Tally(rec *models.StudentRecord, col models.Column) models.GradeCount {
	var c models.GradeCount
	for _, subject := range rec.Subjects {
		switch grading.Valorate(rec.Grade(subject, col.Role), col.Kind) {
		case grading.TEA:
			c.TEA++
		case grading.TEP:
			c.TEP++
		case grading.TED:
			c.TED++
		}
	}
	return c
}
