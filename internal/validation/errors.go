package validation

import (
	"errors"
	"sort"
	"strings"
)

// Errors maps a request field path (e.g. "detalle.0.precio") to message keys.
// A non-empty Errors is returned as an error by the services.
type Errors map[string][]string

// Add appends key to field, skipping duplicates.
func (e Errors) Add(field, key string) {
	for _, k := range e[field] {
		if k == key {
			return
		}
	}
	e[field] = append(e[field], key)
}

// Has reports whether field already failed a rule.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// covers reports whether field, or a field it is nested under, already failed.
func (e Errors) covers(field string) bool {
	for f := range e {
		if f == field || strings.HasPrefix(field, f+".") {
			return true
		}
	}
	return false
}

// Merge copies every entry of other into e.
func (e Errors) Merge(other Errors) {
	for field, keys := range other {
		for _, k := range keys {
			e.Add(field, k)
		}
	}
}

// Empty reports whether no rule failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Error lists the failing fields in a stable order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed")
	for i, f := range fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(" ")
		b.WriteString(strings.Join(e[f], ","))
	}
	return b.String()
}

// AsErrors extracts validation failures from err, unwrapping as needed.
func AsErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

// IsValidationError reports whether err carries validation failures.
func IsValidationError(err error) bool {
	_, ok := AsErrors(err)
	return ok
}
