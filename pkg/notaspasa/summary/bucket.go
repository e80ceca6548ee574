// Package summary buckets aggregated students into academic standings.
package summary

import "github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"

// MaxFewDeficiencies is the largest deficiency count of the UpToFive bucket.
const MaxFewDeficiencies = 5

// OverallName labels the summary across the union of all columns.
const OverallName = "GENERAL"

// Bucket returns the standing of a student with n deficient subjects.
func Bucket(n int) models.Standing {
	switch {
	case n <= 0:
		return models.AllPassing
	case n <= MaxFewDeficiencies:
		return models.UpToFiveDeficient
	default:
		return models.SixOrMoreDeficient
	}
}

func newColumnAnalysis(name string, role models.ColumnRole) models.ColumnAnalysis {
	return models.ColumnAnalysis{
		ColumnName:         name,
		Role:               role,
		AllPassingStudents: []string{},
		UpToFiveStudents:   []models.StudentSubjects{},
		SixOrMoreStudents:  []models.StudentSubjects{},
	}
}

// place records a scored student in the bucket matching its deficiencies.
func place(ca *models.ColumnAnalysis, student string, deficient []string) {
	switch Bucket(len(deficient)) {
	case models.AllPassing:
		ca.AllPassing++
		ca.AllPassingStudents = append(ca.AllPassingStudents, student)
	case models.UpToFiveDeficient:
		ca.UpToFive++
		ca.UpToFiveStudents = append(ca.UpToFiveStudents, models.StudentSubjects{Student: student, Subjects: deficient})
	case models.SixOrMoreDeficient:
		ca.SixOrMore++
		ca.SixOrMoreStudents = append(ca.SixOrMoreStudents, models.StudentSubjects{Student: student, Subjects: deficient})
	}
}
