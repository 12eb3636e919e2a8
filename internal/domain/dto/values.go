package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var jsonNull = []byte("null")

// Amount is a numeric request field that accepts a JSON number or a numeric string.
// Unparseable input is kept so validation can report it instead of failing the decode.
type Amount struct {
	value decimal.Decimal
	raw   string
	set   bool
	valid bool
}

// NewAmount returns a set, valid Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d, raw: d.String(), set: true, valid: true}
}

// Decimal returns the parsed value, zero when unset or invalid.
func (a Amount) Decimal() decimal.Decimal {
	if !a.valid {
		return decimal.Zero
	}
	return a.value
}

// IsSet reports whether a non-empty value was supplied.
func (a Amount) IsSet() bool { return a.set }

// IsValid reports whether the supplied value parsed as a number.
func (a Amount) IsValid() bool { return a.valid }

// ValidationValue is the string the validator checks: empty when unset, the raw input when invalid.
func (a Amount) ValidationValue() string {
	switch {
	case !a.set:
		return ""
	case !a.valid:
		return a.raw
	default:
		return a.value.String()
	}
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on content.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw, ok := rawScalar(data)
	if !ok {
		*a = Amount{}
		return nil
	}
	d, err := decimal.NewFromString(raw)
	*a = Amount{value: d, raw: raw, set: true, valid: err == nil}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	switch {
	case !a.set:
		return jsonNull, nil
	case !a.valid:
		return json.Marshal(a.raw)
	default:
		return []byte(a.value.String()), nil
	}
}

// ID is a reference id request field that accepts a JSON integer or an integer string.
type ID struct {
	value uint
	raw   string
	set   bool
	valid bool
}

// NewID returns a set, valid ID.
func NewID(v uint) ID {
	return ID{value: v, raw: strconv.FormatUint(uint64(v), 10), set: true, valid: true}
}

// ParseID parses a query string value; empty input yields an unset ID.
func ParseID(s string) ID {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}
	}
	v, ok := parseUint(s)
	return ID{value: v, raw: s, set: true, valid: ok}
}

// Uint returns the parsed id, zero when unset or invalid.
func (i ID) Uint() uint {
	if !i.valid {
		return 0
	}
	return i.value
}

// IsSet reports whether a non-empty value was supplied.
func (i ID) IsSet() bool { return i.set }

// IsValid reports whether the supplied value is a non-negative integer.
func (i ID) IsValid() bool { return i.valid }

// ValidationValue is the string the validator checks.
func (i ID) ValidationValue() string {
	if !i.set {
		return ""
	}
	return i.raw
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on content.
func (i *ID) UnmarshalJSON(data []byte) error {
	raw, ok := rawScalar(data)
	if !ok {
		*i = ID{}
		return nil
	}
	*i = ParseID(raw)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (i ID) MarshalJSON() ([]byte, error) {
	switch {
	case !i.set:
		return jsonNull, nil
	case !i.valid:
		return json.Marshal(i.raw)
	default:
		return []byte(strconv.FormatUint(uint64(i.value), 10)), nil
	}
}

// rawScalar returns the trimmed textual content of a JSON value.
// ok is false for null and for empty strings.
func rawScalar(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return "", false
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return string(data), true
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	return string(data), true
}

// parseUint accepts plain integers and integral decimals such as "5.0".
func parseUint(s string) (uint, bool) {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return uint(v), true
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, false
	}
	return uint(d.IntPart()), true
}
