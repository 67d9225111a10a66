package grid

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ErrUnsupportedFormat indicates the file extension maps to no reader.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

var extensions = map[string]Format{
	".xls":  FormatXLS,
	".xlt":  FormatXLS,
	".xlsb": FormatXLSB,
	".xlsx": FormatXLSX,
	".xlsm": FormatXLSX,
	".xltx": FormatXLSX,
	".xltm": FormatXLSX,
}

// Extensions lists the recognised file extensions in ascending order.
func Extensions() []string {
	out := make([]string, 0, len(extensions))
	for ext := range extensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// DetectFormat maps the path's extension (case-insensitive) to a Format.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, filepath.Base(path))
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// Open reads the whole workbook at path with the reader for format.
// Sheets that fail to load are logged and kept empty so the remaining
// sheets can still be scanned.
func Open(path string, format Format, logger *zap.Logger) (*Workbook, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("format", string(format)))

	switch format {
	case FormatXLS:
		return openXLS(path, logger)
	case FormatXLSB:
		return openXLSB(path, logger)
	case FormatXLSX:
		return openXLSX(path, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
