package models

// WorkbookData is the inspect view of a whole workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Format is the detected spreadsheet format.
	Format string `json:"format"`
	// Sheets holds per-sheet data in workbook order.
	Sheets []SheetData `json:"sheets"`
}
