package form

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which primitive a Value holds.
type Kind int

const (
	// KindAbsent is the zero Kind: no value has been set.
	KindAbsent Kind = iota
	KindText
	KindNumber
	KindBool
	KindDate
)

// String returns the kind name for logging and error messages.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "absent"
	}
}

// Value is a single form field value: text, number, boolean, date, or
// absent. The zero Value is absent. Values are immutable.
type Value struct {
	date time.Time
	text string
	num  float64
	kind Kind
	b    bool
}

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Date returns a date value. The time portion is discarded; only the
// calendar date in UTC is kept.
func Date(t time.Time) Value {
	if t.IsZero() {
		return Value{kind: KindDate}
	}
	y, m, d := t.UTC().Date()
	return Value{kind: KindDate, date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Absent returns the absent value, equal to the zero Value.
func Absent() Value { return Value{} }

// Kind reports which primitive the value holds.
func (v Value) Kind() Kind { return v.kind }

// String returns the canonical textual rendering: the text itself,
// numbers via strconv, booleans as "true"/"false", dates as 2006-01-02,
// and "" for absent. Length and pattern checks operate on this form.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		if v.date.IsZero() {
			return ""
		}
		return v.date.Format(time.DateOnly)
	default:
		return ""
	}
}

// Number returns the numeric payload and whether the value is a number.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload and whether the value is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Date returns the date payload and whether the value is a date.
func (v Value) Date() (time.Time, bool) { return v.date, v.kind == KindDate }

// IsEmpty reports whether the value counts as empty for the required
// check: absent, whitespace-only text, or the zero date. Numbers and
// booleans are never empty.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindDate:
		return v.date.IsZero()
	case KindNumber, KindBool:
		return false
	default:
		return true
	}
}

// Equal reports whether two values hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindDate:
		return v.date.Equal(o.date)
	default:
		return true
	}
}

// MarshalJSON renders the value as its natural JSON type: string,
// number, boolean, "2006-01-02" for dates, and null for absent. This is
// the shape submit actions typically post to the backend.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindDate:
		if v.date.IsZero() {
			return []byte("null"), nil
		}
		return json.Marshal(v.date.Format(time.DateOnly))
	default:
		return []byte("null"), nil
	}
}

// Values is a record of named field values. A controller's record keeps
// exactly the key set it was constructed with.
type Values map[string]Value

// Clone returns an independent copy.
func (vs Values) Clone() Values {
	out := make(Values, len(vs))
	for k, v := range vs {
		out[k] = v
	}
	return out
}

// Equal reports whether two records hold the same keys and values.
func (vs Values) Equal(o Values) bool {
	if len(vs) != len(o) {
		return false
	}
	for k, v := range vs {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
