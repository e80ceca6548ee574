package summary

import (
	"slices"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/grading"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
)

// Summary is the column-oriented report of a workbook.
type Summary struct {
	// Columns holds one analysis per column, across all subjects.
	Columns []models.ColumnAnalysis
	// Overall buckets students across the union of all columns.
	Overall models.ColumnAnalysis
}

// Summarize buckets every student once per column, counting the subjects
// whose cell is deficient. Empty and invalid cells are not scored; a
// student without any scored subject in a column is counted as Unscored.
func Summarize(records []*models.StudentRecord, columns []models.Column) Summary {
	s := Summary{Columns: make([]models.ColumnAnalysis, 0, len(columns))}
	for _, col := range columns {
		s.Columns = append(s.Columns, AnalyzeColumn(col, records, nil))
	}
	s.Overall = overall(records, columns)
	return s
}

// AnalyzeColumn buckets records for a single column. When subjects is nil
// every subject of a student is considered; otherwise only those listed.
func AnalyzeColumn(col models.Column, records []*models.StudentRecord, subjects []string) models.ColumnAnalysis {
	ca := newColumnAnalysis(col.Name, col.Role)
	for _, rec := range records {
		scored, deficient := score(rec, col, subjects)
		if !scored {
			ca.Unscored++
			continue
		}
		place(&ca, rec.Name, deficient)
	}
	return ca
}

// AnalyzeSheet builds the column analysis of a single subject over the
// students that have a row in it.
func AnalyzeSheet(subject string, records []*models.StudentRecord, columns []models.Column) models.SheetAnalysis {
	var enrolled []*models.StudentRecord
	for _, rec := range records {
		if rec.HasSubject(subject) {
			enrolled = append(enrolled, rec)
		}
	}

	sa := models.SheetAnalysis{
		SheetName:     subject,
		TotalStudents: len(enrolled),
		Columns:       make([]models.ColumnAnalysis, 0, len(columns)),
	}
	only := []string{subject}
	for _, col := range columns {
		sa.Columns = append(sa.Columns, AnalyzeColumn(col, enrolled, only))
	}
	return sa
}

func score(rec *models.StudentRecord, col models.Column, subjects []string) (scored bool, deficient []string) {
	deficient = []string{}
	for _, subject := range rec.Subjects {
		if subjects != nil && !slices.Contains(subjects, subject) {
			continue
		}
		outcome := grading.Classify(rec.Grade(subject, col.Role), col.Kind)
		if !outcome.Scored() {
			continue
		}
		scored = true
		if outcome.IsDeficient() {
			deficient = append(deficient, subject)
		}
	}
	return scored, deficient
}

// overall counts, per student, the subjects deficient in at least one column.
func overall(records []*models.StudentRecord, columns []models.Column) models.ColumnAnalysis {
	ca := newColumnAnalysis(OverallName, "")
	for _, rec := range records {
		scoredAny := false
		deficient := []string{}
		for _, col := range columns {
			scored, subjects := score(rec, col, nil)
			scoredAny = scoredAny || scored
			for _, s := range subjects {
				if !slices.Contains(deficient, s) {
					deficient = append(deficient, s)
				}
			}
		}
		if !scoredAny {
			ca.Unscored++
			continue
		}
		// Keep the student's subject order rather than discovery order.
		slices.SortStableFunc(deficient, func(a, b string) int {
			return slices.Index(rec.Subjects, a) - slices.Index(rec.Subjects, b)
		})
		place(&ca, rec.Name, deficient)
	}
	return ca
}
