// Package parser finds labelled run metrics in a report grid and infers
// run metadata from the report file name.
package parser

import (
	"github.com/ukaji3/runreport-go/pkg/runreport/grid"
	"github.com/ukaji3/runreport-go/pkg/runreport/models"
	"go.uber.org/zap"
)

// ScanConfig controls a Scan.
type ScanConfig struct {
	// Origin is the first row and column visited on every sheet.
	Origin      grid.Origin
	PhixAllowed bool
	Logger      *zap.Logger
}

// Scan visits every cell of every sheet, in sheet order then row-major
// order, and records the values next to recognised labels in rec.
// A label seen twice overwrites the earlier value.
func Scan(wb *grid.Workbook, rec *models.ReportRecord, cfg ScanConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Classifier{PhixAllowed: cfg.PhixAllowed, Logger: logger}

	for sheetIdx := range wb.Sheets {
		sheet := &wb.Sheets[sheetIdx]
		sheetLogger := logger.With(zap.String("sheet", sheet.Name))
		c.Logger = sheetLogger

		for r := max(cfg.Origin.Row, 0); r < len(sheet.Rows); r++ {
			row := sheet.Rows[r]
			for col := max(cfg.Origin.Col, 0); col < len(row); col++ {
				cell := row[col]
				if cell.IsNull() {
					continue
				}
				right := func() models.Value { return sheet.Cell(r, col+1) }
				if field, ok := c.Apply(rec, cell, right); ok {
					sheetLogger.Debug("field assigned",
						zap.String("field", string(field)),
						zap.Int("row", r),
						zap.Int("col", col))
				}
			}
		}
	}
}
