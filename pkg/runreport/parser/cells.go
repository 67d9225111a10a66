package parser

import (
	"strconv"

	"github.com/ukaji3/runreport-go/pkg/runreport/grid"
	"github.com/ukaji3/runreport-go/pkg/runreport/models"
)

// ExtractCells lists the non-empty rows of a sheet.
// Each row notes which cells Classify recognises as labels.
func ExtractCells(sheet *grid.Sheet) []models.CellRow {
	var result []models.CellRow
	for rowIdx, row := range sheet.Rows {
		cellMap := make(map[string]models.Value)
		labelMap := make(map[string]string)

		for colIdx, cell := range row {
			if cell.IsNull() {
				continue
			}
			colStr := strconv.Itoa(colIdx + 1) // 1-based column index as string
			cellMap[colStr] = cell
			if field := Classify(cell); field != models.FieldNone {
				labelMap[colStr] = string(field)
			}
		}

		if len(cellMap) == 0 {
			continue
		}
		cellRow := models.CellRow{
			R: rowIdx + 1,
			C: cellMap,
		}
		if len(labelMap) > 0 {
			cellRow.Labels = labelMap
		}
		result = append(result, cellRow)
	}

	return result
}

// Inspect builds the inspect view of a workbook.
func Inspect(bookName string, wb *grid.Workbook) *models.WorkbookData {
	out := &models.WorkbookData{
		BookName: bookName,
		Format:   string(wb.Format),
		Sheets:   make([]models.SheetData, 0, len(wb.Sheets)),
	}
	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		out.Sheets = append(out.Sheets, models.SheetData{
			Name:   sheet.Name,
			Rows:   ExtractCells(sheet),
			Bounds: sheet.RangeRef(),
		})
	}
	return out
}
