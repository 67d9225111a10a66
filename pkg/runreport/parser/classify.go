package parser

import (
	"strings"

	"github.com/ukaji3/runreport-go/pkg/runreport/models"
	"go.uber.org/zap"
)

// exactLabels are matched against the whole cell text; the value sits in
// the cell to the right.
var exactLabels = []struct {
	label string
	field models.Field
}{
	{"Cycles Read 1", models.FieldCyclesRead1},
	{"Cycles Index 1", models.FieldCyclesIndex1},
	{"Cycles Index 2", models.FieldCyclesIndex2},
	{"Cycles Read 2", models.FieldCyclesRead2},
	{"Density", models.FieldDensity},
	{"Clusters PF", models.FieldClustersPF},
	{"Yield", models.FieldYield},
	{"% >= Q30", models.FieldQ30},
}

// Classify decides which field a cell labels, or FieldNone.
//
// Exact labels win over substring rules, which are tried in the order
// "phix", "kit", "project" (case-insensitive).
func Classify(cell models.Value) models.Field {
	text, ok := cell.Text()
	if !ok {
		return models.FieldNone
	}
	for _, l := range exactLabels {
		if text == l.label {
			return l.field
		}
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "phix"):
		return models.FieldPhixInput
	case strings.Contains(lower, "kit"):
		return models.FieldSequencingKit
	case strings.Contains(lower, "project"):
		return models.FieldProjectName
	}
	return models.FieldNone
}

// afterColon returns the trimmed text after the first ':'.
func afterColon(text string) (string, bool) {
	_, after, found := strings.Cut(text, ":")
	if !found {
		return "", false
	}
	return strings.TrimSpace(after), true
}

// Classifier writes classified cells into a record.
type Classifier struct {
	// PhixAllowed keeps PhiX values; when false they are forced to null.
	PhixAllowed bool
	Logger      *zap.Logger
}

// Apply classifies cell and, on a match, updates rec. right is only called
// when the field's value lives in the neighbouring cell. It returns the
// matched field and whether rec was written; a "kit" label without a colon
// or an unparseable Q30 matches without writing.
func (c *Classifier) Apply(rec *models.ReportRecord, cell models.Value, right func() models.Value) (models.Field, bool) {
	field := Classify(cell)
	switch field {
	case models.FieldNone:
		return field, false
	case models.FieldSequencingKit, models.FieldProjectName:
		text, _ := cell.Text()
		value, ok := afterColon(text)
		if !ok {
			return field, false
		}
		if field == models.FieldSequencingKit {
			rec.SequencingKit = &value
		} else {
			rec.ProjectName = &value
		}
	case models.FieldPhixInput:
		if c.PhixAllowed {
			rec.PhixInput = right()
		} else {
			rec.PhixInput = models.Null()
		}
	case models.FieldYield:
		rec.Yield = NormalizeYield(right())
	case models.FieldQ30:
		return field, c.applyQ30(rec, right())
	default:
		*rec.Slot(field) = right()
	}
	return field, true
}

// applyQ30 leaves the previous value in place when raw cannot be parsed.
func (c *Classifier) applyQ30(rec *models.ReportRecord, raw models.Value) bool {
	if raw.IsNull() {
		rec.Q30 = models.Null()
		return true
	}
	q, err := NormalizeQ30(raw)
	if err != nil {
		c.logger().Warn("unparseable numeric field",
			zap.String("field", string(models.FieldQ30)),
			zap.Any("raw", raw.Interface()),
			zap.Error(err))
		return false
	}
	rec.Q30 = models.Number(q)
	return true
}

func (c *Classifier) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
