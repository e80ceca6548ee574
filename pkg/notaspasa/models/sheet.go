package models

// Sheet represents a named worksheet and its rows in physical order.
type Sheet struct {
	// Name is the worksheet name as stored in the workbook.
	Name string `json:"name"`
	// Rows contains every decoded row, blank rows included.
	Rows []RawRow `json:"rows,omitempty"`
}
