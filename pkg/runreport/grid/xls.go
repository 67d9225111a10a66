package grid

import (
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/ukaji3/runreport-go/pkg/runreport/models"
	"go.uber.org/zap"
)

// xlsCharset is the fallback code page for BIFF8 strings without one.
const xlsCharset = "utf-8"

var errNoWorkbookStream = errors.New("compound document has no Workbook stream")

func openXLS(path string, logger *zap.Logger) (out *Workbook, err error) {
	// The BIFF8 reader panics on some truncated or mislabelled files.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("read xls: %v", r)
		}
	}()

	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errNoWorkbookStream
	}

	out = &Workbook{Format: FormatXLS}
	for i := 0; i < wb.NumSheets(); i++ {
		ws := xlsSheet(wb, i)
		if ws == nil {
			logger.Warn("skipping unreadable sheet", zap.Int("index", i))
			out.Sheets = append(out.Sheets, Sheet{})
			continue
		}
		out.Sheets = append(out.Sheets, readXLSSheet(ws))
	}
	return out, nil
}

// xlsFormulaText is what the BIFF8 reader renders for every formula cell
// instead of its cached result.
const xlsFormulaText = "FormulaCol"

// readXLSSheet copies a BIFF8 sheet. The reader renders every cell as text,
// so values are typed with ParseValue.
func readXLSSheet(ws *xls.WorkSheet) Sheet {
	sheet := Sheet{Name: ws.Name}
	for r := 0; r <= int(ws.MaxRow); r++ {
		row := xlsRow(ws, r)
		if row == nil {
			continue
		}
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			v := xlsValue(xlsCell(row, c))
			if v.IsNull() {
				continue
			}
			sheet.Set(r, c, v)
		}
	}
	return sheet
}

// xlsSheet parses sheet i, or returns nil if the reader fails on its records.
func xlsSheet(wb *xls.WorkBook, i int) (ws *xls.WorkSheet) {
	defer func() {
		if recover() != nil {
			ws = nil
		}
	}()
	return wb.GetSheet(i)
}

// xlsRow returns row r, or nil when the sheet has no ROW record for it
// (blank rows, empty sheets). WorkSheet.Row dereferences the missing
// entry, so the panic is turned into nil here.
func xlsRow(ws *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(r)
}

// xlsCell returns the rendered text of column c, or "" if the reader fails
// on that cell (e.g. a shared-string index past the SST).
func xlsCell(row *xls.Row, c int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	return row.Col(c)
}

// xlsValue types the reader's text. Formula cells carry no usable value and
// are read as null.
func xlsValue(text string) models.Value {
	if text == xlsFormulaText {
		return models.Null()
	}
	return ParseValue(text)
}
