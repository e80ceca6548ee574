// Package models defines data structures for grade-sheet analysis.
package models

// Cell is a single decoded cell value: nil for a blank cell, otherwise
// string, int64 or float64.
type Cell = any

// RawRow represents one physical row of a sheet as produced by the decoder.
type RawRow struct {
	// Index is the row index (0-based).
	Index int `json:"index"`
	// Cells holds cell values by column position (0-based).
	Cells []Cell `json:"cells"`
}

// At returns the cell at column col, or nil when the row is shorter.
func (r RawRow) At(col int) Cell {
	if col < 0 || col >= len(r.Cells) {
		return nil
	}
	return r.Cells[col]
}
