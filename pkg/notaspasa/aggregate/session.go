// Package aggregate merges scanned sheet rows into per-student records.
package aggregate

import (
	"iter"
	"slices"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/names"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/parser"
)

// Session owns the aggregation state of one analysis run: the canonical
// name pool shared by every sheet and the student records built from it.
// A Session is not safe for concurrent use; each run creates its own.
type Session struct {
	resolver names.Resolver
	records  map[string]*models.StudentRecord
	order    []string
	subjects []string
}

// NewSession returns an empty session resolving names with resolver.
// A nil resolver selects names.NewPool.
func NewSession(resolver names.Resolver) *Session {
	if resolver == nil {
		resolver = names.NewPool()
	}
	return &Session{
		resolver: resolver,
		records:  make(map[string]*models.StudentRecord),
	}
}

// AddSheet merges the rows of one subject sheet and returns how many rows
// were merged. A student appearing twice in the same sheet keeps the cells
// of the later row. Sheets without rows are not recorded as subjects.
func (s *Session) AddSheet(subject string, rows iter.Seq[parser.ScannedRow]) int {
	merged := 0
	for row := range rows {
		if merged == 0 && !slices.Contains(s.subjects, subject) {
			s.subjects = append(s.subjects, subject)
		}
		merged++
		name, _ := s.resolver.Resolve(row.Name)

		rec, ok := s.records[name]
		if !ok {
			rec = &models.StudentRecord{
				Name:   name,
				Grades: make(map[string]map[models.ColumnRole]models.Cell),
			}
			s.records[name] = rec
			s.order = append(s.order, name)
		}

		cells, ok := rec.Grades[subject]
		if !ok {
			cells = make(map[models.ColumnRole]models.Cell, len(row.Grades))
			rec.Grades[subject] = cells
			rec.Subjects = append(rec.Subjects, subject)
		}
		for role, v := range row.Grades {
			cells[role] = v
		}
	}
	return merged
}

// Subjects returns the processed subjects in the order they were added.
func (s *Session) Subjects() []string {
	return append([]string{}, s.subjects...)
}

// Len returns the number of distinct students.
func (s *Session) Len() int {
	return len(s.order)
}

// Records returns the student records in first-seen order, with the
// aliases the resolver merged into each canonical name.
func (s *Session) Records() []*models.StudentRecord {
	out := make([]*models.StudentRecord, 0, len(s.order))
	for _, name := range s.order {
		rec := s.records[name]
		rec.Aliases = s.resolver.Aliases(name)
		out = append(out, rec)
	}
	return out
}

// Roster returns the canonical identities in first-seen order.
func (s *Session) Roster() []models.StudentIdentity {
	out := make([]models.StudentIdentity, 0, len(s.order))
	for _, rec := range s.Records() {
		out = append(out, models.StudentIdentity{
			Name:     rec.Name,
			Aliases:  rec.Aliases,
			Subjects: slices.Clone(rec.Subjects),
		})
	}
	return out
}
