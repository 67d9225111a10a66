package runreport

import (
	"errors"
	"fmt"

	"github.com/ukaji3/runreport-go/pkg/runreport/grid"
	"github.com/ukaji3/runreport-go/pkg/runreport/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the file extension is not a known spreadsheet format.
var ErrUnsupportedFormat = grid.ErrUnsupportedFormat

// ErrMalformedFilename indicates the file name lacks the YYMMDD date prefix
// or the application suffix.
var ErrMalformedFilename = parser.ErrMalformedFilename

// FilenameError carries the rejected name and the reason.
type FilenameError = parser.FilenameError

// ExtractionError represents an error while reading a workbook.
type ExtractionError struct {
	Path      string
	Component string // "open", "stat"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Path, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, component string, err error) *ExtractionError {
	return &ExtractionError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
