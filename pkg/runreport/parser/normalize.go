package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ukaji3/runreport-go/pkg/runreport/models"
)

var errNoValue = errors.New("no value")

// NormalizeYield cleans a textual yield down to digits and one decimal
// point. Commas count as decimal separators ("12,5" is 12.5); when that
// leaves several points, all but the last are grouping separators
// ("1,234.5 M" is 1234.5). Numbers and nulls pass through unchanged.
func NormalizeYield(raw models.Value) models.Value {
	text, ok := raw.Text()
	if !ok {
		return raw
	}

	text = strings.ReplaceAll(text, ",", ".")
	var b strings.Builder
	for _, r := range text {
		if r == '.' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if last := strings.LastIndex(cleaned, "."); last >= 0 {
		cleaned = strings.ReplaceAll(cleaned[:last], ".", "") + cleaned[last:]
	}
	return models.String(cleaned)
}

// NormalizeQ30 turns a Q30 cell into a percentage. Text has "%" and
// whitespace removed before parsing. Values below 1 are fractions and are
// scaled by 100.
func NormalizeQ30(raw models.Value) (float64, error) {
	var q float64
	switch raw.Kind() {
	case models.KindNumber:
		q, _ = raw.Float()
	case models.KindString:
		text, _ := raw.Text()
		cleaned := strings.Map(func(r rune) rune {
			if r == '%' || unicode.IsSpace(r) {
				return -1
			}
			return r
		}, text)
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", text, err)
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, fmt.Errorf("parse %q: not a finite number", text)
		}
		q = parsed
	default:
		return 0, errNoValue
	}

	if q < 1 {
		q *= 100
	}
	return q, nil
}
