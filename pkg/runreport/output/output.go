// Package output serializes extracted records and inspect views.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/runreport-go/pkg/runreport/models"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatCSV, FormatTSV:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, csv, or tsv)", s)
	}
}

// ToJSON serializes records as a JSON array.
func ToJSON(records []*models.ReportRecord, pretty bool) ([]byte, error) {
	if records == nil {
		records = []*models.ReportRecord{}
	}
	return marshal(records, pretty)
}

// WorkbookToJSON serializes an inspect view.
func WorkbookToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet of an inspect view.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteDelimited writes a header of models.FieldNames followed by one row
// per record. Unset fields are empty.
func WriteDelimited(w io.Writer, records []*models.ReportRecord, delimiter rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if err := writer.Write(models.FieldNames()); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, rec := range records {
		if err := writer.Write(rec.Strings()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Write encodes records in format f.
func Write(w io.Writer, records []*models.ReportRecord, f Format, pretty bool) error {
	switch f {
	case FormatCSV:
		return WriteDelimited(w, records, ',')
	case FormatTSV:
		return WriteDelimited(w, records, '\t')
	default:
		data, err := ToJSON(records, pretty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}
