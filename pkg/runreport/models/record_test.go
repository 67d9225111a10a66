package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleOrderAndNulls(t *testing.T) {
	kit := "NovaSeq 6000"
	r := &ReportRecord{
		SequencingKit: &kit,
		CyclesRead1:   Number(151),
		Density:       Number(42.5),
		Yield:         String("1234.5"),
		ProtocolName:  "240117_RNAseq",
		Application:   "RNAseq",
	}

	tuple := r.Tuple()
	require.Len(t, tuple, 13)
	require.Len(t, FieldNames(), 13)

	assert.Equal(t, "NovaSeq 6000", tuple[0])
	assert.Equal(t, 151.0, tuple[1])
	assert.Nil(t, tuple[2], "cycles_index_1 was never set")
	assert.Equal(t, 42.5, tuple[5])
	assert.Equal(t, "1234.5", tuple[7])
	assert.Nil(t, tuple[8])
	assert.Nil(t, tuple[9])
	assert.Equal(t, "240117_RNAseq", tuple[10])
	assert.Equal(t, "RNAseq", tuple[11])
	assert.Nil(t, tuple[12])

	assert.Equal(t, "sequencing_kit", FieldNames()[0])
	assert.Equal(t, "phix_input", FieldNames()[12])
}

func TestRecordJSONKeepsNulls(t *testing.T) {
	r := &ReportRecord{Density: Number(42.5), Application: ApplicationUnknown}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 42.5, decoded["density"])
	assert.Contains(t, decoded, "cycles_read_1")
	assert.Nil(t, decoded["cycles_read_1"])
	assert.Nil(t, decoded["sequencing_kit"])
	assert.Equal(t, "unknown", decoded["application"])
}

func TestValueJSONRoundTrip(t *testing.T) {
	for _, v := range []Value{Null(), Number(0.985), String("98.5%")} {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var got Value
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, v, got)
	}
}

func TestSlot(t *testing.T) {
	r := &ReportRecord{}
	*r.Slot(FieldDensity) = Number(1)
	assert.Equal(t, Number(1), r.Density)
	assert.Nil(t, r.Slot(FieldSequencingKit))
	assert.Nil(t, r.Slot(FieldNone))
}

func TestApplicationVocabulary(t *testing.T) {
	codes := ApplicationCodes()
	assert.Len(t, codes, 16)
	assert.IsIncreasing(t, codes)

	codes[0] = "mutated"
	assert.NotEqual(t, "mutated", ApplicationCodes()[0])

	app, ok := LookupApplication("scvdjseq")
	assert.True(t, ok)
	assert.Equal(t, Application("scVDJseq"), app)

	_, ok = LookupApplication("RNAseq")
	assert.False(t, ok, "lookup is by lowercase code")
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.True(t, Null().Equal(Value{}))
	assert.False(t, Number(1).Equal(String("1")))
	assert.False(t, String("a").Equal(String("b")))
}
