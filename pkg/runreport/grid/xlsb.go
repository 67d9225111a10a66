package grid

import (
	"github.com/TsubasaBE/go-xlsb/workbook"
	"go.uber.org/zap"
)

func openXLSB(path string, logger *zap.Logger) (*Workbook, error) {
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	out := &Workbook{Format: FormatXLSB}
	for i, name := range wb.Sheets() {
		// go-xlsb sheet indexes are 1-based.
		ws, err := wb.Sheet(i + 1)
		if err != nil {
			logger.Warn("skipping unreadable sheet",
				zap.String("sheet", name), zap.Error(err))
			out.Sheets = append(out.Sheets, Sheet{Name: name})
			continue
		}

		sheet := Sheet{Name: name}
		for row := range ws.Rows(true) {
			for _, c := range row {
				v := FromInterface(c.V)
				if v.IsNull() {
					continue
				}
				sheet.Set(c.R, c.C, v)
			}
		}
		out.Sheets = append(out.Sheets, sheet)
	}
	return out, nil
}
