package summary

import (
	"github.com/montanaflynn/stats"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/grading"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
)

// Statistics computes numeric grade statistics for each column.
func Statistics(records []*models.StudentRecord, columns []models.Column) []models.ColumnStats {
	out := make([]models.ColumnStats, 0, len(columns))
	for _, col := range columns {
		out = append(out, ColumnStatistics(col, records))
	}
	return out
}

// ColumnStatistics returns mean, median, min and max of the numeric grades
// found in col. Codes, blanks and unreadable cells are ignored.
func ColumnStatistics(col models.Column, records []*models.StudentRecord) models.ColumnStats {
	cs := models.ColumnStats{Role: col.Role, ColumnName: col.Name}

	var data stats.Float64Data
	for _, rec := range records {
		for _, subject := range rec.Subjects {
			cell := rec.Grade(subject, col.Role)
			switch grading.Classify(cell, col.Kind) {
			case grading.Passing, grading.Deficient:
				n, _ := grading.Numeric(cell)
				data = append(data, n)
			}
		}
	}
	cs.Scored = data.Len()
	if cs.Scored == 0 {
		return cs
	}

	mean, _ := data.Mean()
	cs.Mean, _ = stats.Round(mean, 2)
	cs.Median, _ = data.Median()
	cs.Min, _ = data.Min()
	cs.Max, _ = data.Max()
	return cs
}
