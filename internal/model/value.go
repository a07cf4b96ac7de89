package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindMissing Kind = iota
	KindText
	KindNumber
	KindDate
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "missing":
		return KindMissing, nil
	case "text", "string":
		return KindText, nil
	case "number", "float", "int":
		return KindNumber, nil
	case "date":
		return KindDate, nil
	default:
		return KindMissing, fmt.Errorf("unknown value kind: %s", s)
	}
}

// MarshalText lets Kind appear as a string in JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the JSON string form of a Kind.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Value is a tagged scalar. Dates are kept as ISO-8601 strings and are
// ordered lexicographically; they are never parsed.
type Value struct {
	Kind   Kind
	text   string
	number float64
}

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Kind: KindNumber, number: f} }

// Date returns a date value holding an ISO-8601 string.
func Date(iso string) Value { return Value{Kind: KindDate, text: iso} }

// Missing returns the missing value.
func Missing() Value { return Value{Kind: KindMissing} }

// IsMissing reports whether v holds no value.
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// Float returns the numeric payload; ok is false for non-Number values.
func (v Value) Float() (f float64, ok bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.number, true
}

// String renders the value as text: Text as-is, Number in its shortest
// decimal form, Date as its ISO string, Missing as "".
func (v Value) String() string {
	switch v.Kind {
	case KindText, KindDate:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	default:
		return ""
	}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.number == o.number
	case KindMissing:
		return true
	default:
		return v.text == o.text
	}
}

// MarshalJSON encodes Number as a JSON number, Missing as null and
// everything else as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindMissing:
		return []byte("null"), nil
	case KindNumber:
		return json.Marshal(v.number)
	default:
		return json.Marshal(v.text)
	}
}

// UnmarshalJSON is the inverse of MarshalJSON. Strings decode as Text;
// Dataset.UnmarshalJSON restores Date values from the column kinds.
func (v *Value) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		*v = Missing()
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("value must be a string, number or null: %s", trimmed)
	}
	*v = Text(s)
	return nil
}
