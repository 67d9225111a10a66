package runreport

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/runreport-go/pkg/runreport/grid"
	"github.com/ukaji3/runreport-go/pkg/runreport/models"
	"github.com/ukaji3/runreport-go/pkg/runreport/parser"
	"go.uber.org/zap"
)

// Parse extracts the run metrics from the report at path.
//
// The returned record is best effort: labels that are missing from the
// workbook leave their fields null. Errors are reserved for reports that
// cannot be read at all (ErrUnsupportedFormat, ErrMalformedFilename,
// ErrFileNotFound or an *ExtractionError).
func Parse(path string, opts Options) (*models.ReportRecord, error) {
	format, err := grid.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	meta, err := parser.InferMetadata(path, opts.matchCutoff())
	if err != nil {
		return nil, err
	}

	if err := statReport(path); err != nil {
		return nil, err
	}

	logger := opts.logger().With(zap.String("report", filepath.Base(path)))
	wb, err := grid.Open(path, format, logger)
	if err != nil {
		return nil, NewExtractionError(path, "open", err)
	}

	rec := scan(meta, wb, opts, logger)
	rec.Source = filepath.Base(path)
	return rec, nil
}

// ParseWorkbook runs the extraction over an already loaded workbook.
// name supplies the run date and application code, as a file name would.
func ParseWorkbook(name string, wb *grid.Workbook, opts Options) (*models.ReportRecord, error) {
	meta, err := parser.InferMetadata(name, opts.matchCutoff())
	if err != nil {
		return nil, err
	}
	logger := opts.logger().With(zap.String("report", filepath.Base(name)))
	rec := scan(meta, wb, opts, logger)
	rec.Source = filepath.Base(name)
	return rec, nil
}

// OpenGrid loads the workbook at path without extracting anything.
func OpenGrid(path string, opts Options) (*grid.Workbook, error) {
	format, err := grid.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if err := statReport(path); err != nil {
		return nil, err
	}
	wb, err := grid.Open(path, format, opts.logger())
	if err != nil {
		return nil, NewExtractionError(path, "open", err)
	}
	return wb, nil
}

// statReport checks that path exists before a reader opens it.
func statReport(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewExtractionError(path, "stat", ErrFileNotFound)
		}
		return NewExtractionError(path, "stat", err)
	}
	return nil
}

func scan(meta parser.Metadata, wb *grid.Workbook, opts Options, logger *zap.Logger) *models.ReportRecord {
	rec := &models.ReportRecord{
		ProtocolName: meta.ProtocolName,
		Application:  meta.Application,
	}

	phixAllowed := meta.PhixAllowed(opts.phixCutoff())
	logger.Debug("scanning report",
		zap.Time("run_date", meta.RunDate),
		zap.String("application", string(meta.Application)),
		zap.Bool("phix_allowed", phixAllowed),
		zap.Int("sheets", len(wb.Sheets)))

	parser.Scan(wb, rec, parser.ScanConfig{
		Origin:      opts.Origin(wb.Format),
		PhixAllowed: phixAllowed,
		Logger:      logger,
	})
	return rec
}
