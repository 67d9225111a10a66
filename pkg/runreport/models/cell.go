// Package models defines data structures for run report extraction.
package models

import (
	"encoding/json"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNull is an empty cell or a field that was never reported.
	KindNull Kind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindString is a text cell.
	KindString
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "null"
	}
}

// Value is a typed cell value: null, number or string.
// The zero Value is null.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a text Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the numeric payload and true if v is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Text returns the string payload and true if v is a string.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// Equal reports whether v and o hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	return v == o
}

// Interface returns nil, float64 or string.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	default:
		return nil
	}
}

// Format renders v for tabular output. Null renders as "".
func (v Value) Format() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	default:
		return ""
	}
}

// MarshalJSON encodes v as null, a JSON number or a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes null, numbers and strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Null()
	case float64:
		*v = Number(t)
	case string:
		*v = String(t)
	default:
		return &json.UnsupportedValueError{Str: string(data)}
	}
	return nil
}

// CellRow represents a single row of non-empty cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (1-based, as string) to cell value.
	C map[string]Value `json:"c"`
	// Labels maps column index to the report field the cell labels (optional).
	Labels map[string]string `json:"labels,omitempty"`
}
