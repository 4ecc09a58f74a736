package unitconv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	c := New()

	tests := []struct {
		amount  float64
		from    string
		to      string
		want    float64
		message string
	}{
		{10, "km", "miles", 6.2137119, "10 km is 6.213712 miles."},
		{1, "ft", "in", 12, "1 ft is 12 in."},
		{1000, "g", "kg", 1, "1000 g is 1 kg."},
		{100, "c", "f", 212, "100 c is 212 f."},
		{32, "fahrenheit", "celsius", 0, "32 fahrenheit is 0 celsius."},
		{0, "c", "k", 273.15, "0 c is 273.15 k."},
		{1, "gallon", "l", 3.78541, "1 gallon is 3.78541 l."},
		{2.5, "M", "cm", 250, "2.5 M is 250 cm."},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			got, msg, err := c.Convert(tt.amount, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	c := New()

	_, _, err := c.Convert(5, "foo", "bar")
	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "Unknown unit: foo.", convErr.Reason)

	_, _, err = c.Convert(5, "m", "bar")
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "Unknown unit: bar.", convErr.Reason)

	_, _, err = c.Convert(5, "kg", "km")
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "Cannot convert kg (weight) to km (length).", convErr.Reason)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "6.213712", FormatValue(6.2137119223733395))
	assert.Equal(t, "100", FormatValue(100))
	assert.Equal(t, "0.5", FormatValue(0.5))
	assert.Equal(t, "0", FormatValue(-0.0000001))
}
