package models

// SheetData is the inspect view of a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains rows with at least one non-empty cell.
	Rows []CellRow `json:"rows,omitempty"`
	// Bounds is the used range in A1 notation (e.g. "A1:D10"), empty for blank sheets.
	Bounds string `json:"bounds,omitempty"`
}
