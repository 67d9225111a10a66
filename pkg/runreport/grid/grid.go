// Package grid turns spreadsheet files into an ordered list of sheets, each a
// rectangular-ish grid of typed cell values.
//
// Every reader library is hidden behind the same Workbook type, so the
// extraction pipeline is written once regardless of file format.
package grid

import (
	"fmt"

	"github.com/ukaji3/runreport-go/pkg/runreport/models"
	"github.com/xuri/excelize/v2"
)

// Format is a supported spreadsheet container.
type Format string

const (
	// FormatXLS is the legacy BIFF8 binary workbook (.xls, .xlt).
	FormatXLS Format = "xls"
	// FormatXLSB is the BIFF12 binary workbook (.xlsb).
	FormatXLSB Format = "xlsb"
	// FormatXLSX is the Office Open XML workbook (.xlsx, .xlsm, .xltx, .xltm).
	FormatXLSX Format = "xlsx"
)

// Origin is the 0-based row and column where scanning starts.
type Origin struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// DefaultOrigin returns the scan origin used when none is configured.
// Every reader exposes the first row and column at index 0, so scanning
// starts at the top-left cell for all formats.
func DefaultOrigin() Origin {
	return Origin{}
}

// Sheet is one worksheet. Rows may be ragged.
type Sheet struct {
	Name string
	Rows [][]models.Value
}

// Workbook is an ordered list of sheets.
type Workbook struct {
	Format Format
	Sheets []Sheet
}

// Cell returns the value at (row, col). Coordinates outside the sheet
// yield null.
func (s *Sheet) Cell(row, col int) models.Value {
	if row < 0 || col < 0 || row >= len(s.Rows) {
		return models.Null()
	}
	r := s.Rows[row]
	if col >= len(r) {
		return models.Null()
	}
	return r[col]
}

// Set stores v at (row, col), growing the sheet as needed.
func (s *Sheet) Set(row, col int, v models.Value) {
	if row < 0 || col < 0 {
		return
	}
	for len(s.Rows) <= row {
		s.Rows = append(s.Rows, nil)
	}
	r := s.Rows[row]
	for len(r) <= col {
		r = append(r, models.Null())
	}
	r[col] = v
	s.Rows[row] = r
}

// Width returns the length of the longest row.
func (s *Sheet) Width() int {
	w := 0
	for _, r := range s.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Bounds finds the bounding box of non-null cells (0-based, inclusive).
// ok is false for a sheet without data.
func (s *Sheet) Bounds() (minRow, maxRow, minCol, maxCol int, ok bool) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range s.Rows {
		for colIdx, cell := range row {
			if cell.IsNull() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return minRow, maxRow, minCol, maxCol, minRow >= 0
}

// RangeRef returns the used range in A1 notation, or "" for a blank sheet.
func (s *Sheet) RangeRef() string {
	minRow, maxRow, minCol, maxCol, ok := s.Bounds()
	if !ok {
		return ""
	}
	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}
