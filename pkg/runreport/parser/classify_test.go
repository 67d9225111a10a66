package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/runreport-go/pkg/runreport/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		cell models.Value
		want models.Field
	}{
		{models.String("Cycles Read 1"), models.FieldCyclesRead1},
		{models.String("Cycles Index 1"), models.FieldCyclesIndex1},
		{models.String("Cycles Index 2"), models.FieldCyclesIndex2},
		{models.String("Cycles Read 2"), models.FieldCyclesRead2},
		{models.String("Density"), models.FieldDensity},
		{models.String("Clusters PF"), models.FieldClustersPF},
		{models.String("Yield"), models.FieldYield},
		{models.String("% >= Q30"), models.FieldQ30},
		// exact labels are case- and whitespace-sensitive
		{models.String("density"), models.FieldNone},
		{models.String("Density "), models.FieldNone},
		{models.String("PhiX Input [%]"), models.FieldPhixInput},
		{models.String("Sequencing Kit: NovaSeq 6000"), models.FieldSequencingKit},
		{models.String("PROJECT: P-17"), models.FieldProjectName},
		// phix is checked before kit and project
		{models.String("PhiX Kit Project"), models.FieldPhixInput},
		{models.String("Kit Project: X"), models.FieldSequencingKit},
		{models.String("Lane"), models.FieldNone},
		{models.Number(42.5), models.FieldNone},
		{models.Null(), models.FieldNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.cell), "%v", tt.cell.Interface())
	}
}

func rightOf(v models.Value) func() models.Value {
	return func() models.Value { return v }
}

func neverCalled(t *testing.T) func() models.Value {
	return func() models.Value {
		t.Fatal("right neighbour must not be read")
		return models.Null()
	}
}

func TestApplyKitAndProject(t *testing.T) {
	c := &Classifier{}
	rec := &models.ReportRecord{}

	c.Apply(rec, models.String("Sequencing Kit: NovaSeq 6000"), neverCalled(t))
	require.NotNil(t, rec.SequencingKit)
	assert.Equal(t, "NovaSeq 6000", *rec.SequencingKit)

	c.Apply(rec, models.String("Project Name:  AG Smith : pilot "), neverCalled(t))
	require.NotNil(t, rec.ProjectName)
	assert.Equal(t, "AG Smith : pilot", *rec.ProjectName)
}

func TestApplyKitWithoutColon(t *testing.T) {
	c := &Classifier{}
	rec := &models.ReportRecord{}

	field, assigned := c.Apply(rec, models.String("Reagent Kit"), neverCalled(t))
	assert.Equal(t, models.FieldSequencingKit, field)
	assert.False(t, assigned)
	assert.Nil(t, rec.SequencingKit)
	assert.Nil(t, rec.ProjectName)
}

func TestApplyNumericLabels(t *testing.T) {
	c := &Classifier{}
	rec := &models.ReportRecord{}

	c.Apply(rec, models.String("Density"), rightOf(models.Number(42.5)))
	c.Apply(rec, models.String("Clusters PF"), rightOf(models.String("85.2%")))
	c.Apply(rec, models.String("Cycles Read 1"), rightOf(models.Number(151)))
	c.Apply(rec, models.String("Yield"), rightOf(models.String("1,234.5 M")))
	c.Apply(rec, models.String("% >= Q30"), rightOf(models.Number(0.985)))

	assert.Equal(t, models.Number(42.5), rec.Density)
	assert.Equal(t, models.String("85.2%"), rec.ClustersPF)
	assert.Equal(t, models.Number(151), rec.CyclesRead1)
	assert.Equal(t, models.String("1234.5"), rec.Yield)
	q, ok := rec.Q30.Float()
	require.True(t, ok)
	assert.InDelta(t, 98.5, q, 1e-9)
}

func TestApplyPhixGate(t *testing.T) {
	rec := &models.ReportRecord{}

	allowed := &Classifier{PhixAllowed: true}
	allowed.Apply(rec, models.String("PhiX Input"), rightOf(models.Number(1.5)))
	assert.Equal(t, models.Number(1.5), rec.PhixInput)

	blocked := &Classifier{PhixAllowed: false}
	blocked.Apply(rec, models.String("PhiX Input"), neverCalled(t))
	assert.True(t, rec.PhixInput.IsNull())
}

func TestApplyQ30ParseFailureKeepsPrevious(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := &Classifier{Logger: zap.New(core)}
	rec := &models.ReportRecord{}

	_, assigned := c.Apply(rec, models.String("% >= Q30"), rightOf(models.String("92.4%")))
	assert.True(t, assigned)
	_, assigned = c.Apply(rec, models.String("% >= Q30"), rightOf(models.String("pending")))
	assert.False(t, assigned)

	assert.Equal(t, models.Number(92.4), rec.Q30)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "unparseable numeric field", entry.Message)
	assert.Equal(t, "q30", entry.ContextMap()["field"])
	assert.Equal(t, "pending", entry.ContextMap()["raw"])
}

func TestApplyQ30NullNeighbour(t *testing.T) {
	c := &Classifier{}
	rec := &models.ReportRecord{Q30: models.Number(90)}

	c.Apply(rec, models.String("% >= Q30"), rightOf(models.Null()))
	assert.True(t, rec.Q30.IsNull())
}
