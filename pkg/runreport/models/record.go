package models

// Field identifies one extracted report field.
type Field string

// Report fields in output order.
const (
	FieldNone          Field = ""
	FieldSequencingKit Field = "sequencing_kit"
	FieldCyclesRead1   Field = "cycles_read_1"
	FieldCyclesIndex1  Field = "cycles_index_1"
	FieldCyclesRead2   Field = "cycles_read_2"
	FieldCyclesIndex2  Field = "cycles_index_2"
	FieldDensity       Field = "density"
	FieldClustersPF    Field = "clusters_pf"
	FieldYield         Field = "yield"
	FieldQ30           Field = "q30"
	FieldProjectName   Field = "project_name"
	FieldProtocolName  Field = "protocol_name"
	FieldApplication   Field = "application"
	FieldPhixInput     Field = "phix_input"
)

var fieldOrder = []Field{
	FieldSequencingKit,
	FieldCyclesRead1,
	FieldCyclesIndex1,
	FieldCyclesRead2,
	FieldCyclesIndex2,
	FieldDensity,
	FieldClustersPF,
	FieldYield,
	FieldQ30,
	FieldProjectName,
	FieldProtocolName,
	FieldApplication,
	FieldPhixInput,
}

// FieldNames returns the column names matching ReportRecord.Tuple.
func FieldNames() []string {
	names := make([]string, len(fieldOrder))
	for i, f := range fieldOrder {
		names[i] = string(f)
	}
	return names
}

// ReportRecord accumulates the metrics found in one report.
//
// A null Value or nil pointer means "not reported"; it is never a zero.
type ReportRecord struct {
	// Source is the report file name. It is not part of Tuple.
	Source string `json:"source,omitempty"`

	SequencingKit *string     `json:"sequencing_kit"`
	CyclesRead1   Value       `json:"cycles_read_1"`
	CyclesIndex1  Value       `json:"cycles_index_1"`
	CyclesRead2   Value       `json:"cycles_read_2"`
	CyclesIndex2  Value       `json:"cycles_index_2"`
	Density       Value       `json:"density"`
	ClustersPF    Value       `json:"clusters_pf"`
	Yield         Value       `json:"yield"`
	Q30           Value       `json:"q30"`
	ProjectName   *string     `json:"project_name"`
	ProtocolName  string      `json:"protocol_name"`
	Application   Application `json:"application"`
	PhixInput     Value       `json:"phix_input"`
}

// Tuple returns the 13 output fields in FieldNames order.
// Unset fields are nil; set values are float64 or string.
func (r *ReportRecord) Tuple() []interface{} {
	return []interface{}{
		optString(r.SequencingKit),
		r.CyclesRead1.Interface(),
		r.CyclesIndex1.Interface(),
		r.CyclesRead2.Interface(),
		r.CyclesIndex2.Interface(),
		r.Density.Interface(),
		r.ClustersPF.Interface(),
		r.Yield.Interface(),
		r.Q30.Interface(),
		optString(r.ProjectName),
		r.ProtocolName,
		string(r.Application),
		r.PhixInput.Interface(),
	}
}

// Strings returns Tuple rendered as text, "" for unset fields.
func (r *ReportRecord) Strings() []string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return []string{
		deref(r.SequencingKit),
		r.CyclesRead1.Format(),
		r.CyclesIndex1.Format(),
		r.CyclesRead2.Format(),
		r.CyclesIndex2.Format(),
		r.Density.Format(),
		r.ClustersPF.Format(),
		r.Yield.Format(),
		r.Q30.Format(),
		deref(r.ProjectName),
		r.ProtocolName,
		string(r.Application),
		r.PhixInput.Format(),
	}
}

// Slot returns a pointer to the Value-typed field f, or nil if f is not
// stored as a Value.
func (r *ReportRecord) Slot(f Field) *Value {
	switch f {
	case FieldCyclesRead1:
		return &r.CyclesRead1
	case FieldCyclesIndex1:
		return &r.CyclesIndex1
	case FieldCyclesRead2:
		return &r.CyclesRead2
	case FieldCyclesIndex2:
		return &r.CyclesIndex2
	case FieldDensity:
		return &r.Density
	case FieldClustersPF:
		return &r.ClustersPF
	case FieldYield:
		return &r.Yield
	case FieldQ30:
		return &r.Q30
	case FieldPhixInput:
		return &r.PhixInput
	}
	return nil
}

func optString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
