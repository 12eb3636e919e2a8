package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		wantError bool
	}{
		{name: "plain date", input: "2024-05-01", expected: "2024-05-01"},
		{name: "date time", input: "2024-05-01 13:45:00", expected: "2024-05-01"},
		{name: "ISO date time", input: "2024-05-01T13:45:00", expected: "2024-05-01"},
		{name: "RFC3339", input: "2024-05-01T23:00:00Z", expected: "2024-05-01"},
		{name: "surrounding spaces", input: " 2024-05-01 ", expected: "2024-05-01"},
		{name: "invalid month", input: "2024-13-01", wantError: true},
		{name: "not a date", input: "mañana", wantError: true},
		{name: "empty", input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded.Time))

	assert.Error(t, json.Unmarshal([]byte(`12`), &decoded))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		expected  string
		wantError bool
	}{
		{name: "time value", value: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), expected: "2023-01-02"},
		{name: "string value", value: "2023-01-02", expected: "2023-01-02"},
		{name: "bytes value", value: []byte("2023-01-02"), expected: "2023-01-02"},
		{name: "nil value", value: nil, expected: "0001-01-01"},
		{name: "unsupported type", value: 42, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.value)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.String())
		})
	}

	v, err := NewDate(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)).Value()
	require.NoError(t, err)
	assert.Equal(t, "2023-01-02", v)
}
