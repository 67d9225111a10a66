package grid

import (
	"math"
	"strconv"

	"github.com/ukaji3/runreport-go/pkg/runreport/models"
)

// ParseValue types a cell rendered as text by a reader library.
// Integers and decimals become numbers, "" becomes null, anything else
// stays a string.
func ParseValue(s string) models.Value {
	if s == "" {
		return models.Null()
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	// ParseFloat also accepts "NaN" and "Inf", which are labels, not numbers.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Number(f)
	}
	return models.String(s)
}

// FromInterface converts a reader's native cell value.
func FromInterface(v interface{}) models.Value {
	switch t := v.(type) {
	case nil:
		return models.Null()
	case string:
		if t == "" {
			return models.Null()
		}
		return models.String(t)
	case float64:
		return models.Number(t)
	case float32:
		return models.Number(float64(t))
	case int:
		return models.Number(float64(t))
	case int64:
		return models.Number(float64(t))
	case int32:
		return models.Number(float64(t))
	case bool:
		if t {
			return models.Number(1)
		}
		return models.Number(0)
	default:
		return models.Null()
	}
}
