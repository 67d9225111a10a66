package grid

import (
	"github.com/ukaji3/runreport-go/pkg/runreport/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func openXLSX(path string, logger *zap.Logger) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return fromExcelize(f, logger), nil
}

// fromExcelize converts every sheet of an open excelize file.
func fromExcelize(f *excelize.File, logger *zap.Logger) *Workbook {
	wb := &Workbook{Format: FormatXLSX}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := readExcelizeSheet(f, sheetName)
		if err != nil {
			logger.Warn("skipping unreadable sheet",
				zap.String("sheet", sheetName), zap.Error(err))
			sheet = Sheet{Name: sheetName}
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb
}

func readExcelizeSheet(f *excelize.File, sheetName string) (Sheet, error) {
	// Raw values keep numbers unformatted, e.g. 0.985 instead of "98.5%".
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return Sheet{}, err
	}

	sheet := Sheet{Name: sheetName, Rows: make([][]models.Value, len(rows))}
	for rowIdx, row := range rows {
		values := make([]models.Value, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			values[colIdx] = typeExcelizeCell(f, sheetName, rowIdx, colIdx, cellValue)
		}
		sheet.Rows[rowIdx] = values
	}
	return sheet, nil
}

// typeExcelizeCell keeps cells stored as text as strings, even when they
// look numeric; everything else goes through ParseValue.
func typeExcelizeCell(f *excelize.File, sheetName string, rowIdx, colIdx int, raw string) models.Value {
	cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return ParseValue(raw)
	}
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return ParseValue(raw)
	}
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.String(raw)
	default:
		return ParseValue(raw)
	}
}
