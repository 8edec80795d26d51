package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{14, "14"},
		{-2.5, "-2.5"},
		{0.5, "0.5"},
		{0.07, "0.07"},
		{0.000001, "0.000001"},
		{0.0000005, "5e-7"},
		{1.5e-10, "1.5e-10"},
		{123456789012345680000, "123456789012345680000"},
		{1e21, "1e+21"},
		{-2.5e22, "-2.5e+22"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10.0 / 3, "3.33333333333"},
		{0.1 + 0.2, "0.3"},
		{2.0 / 3, "0.666666666667"},
		{1e15 + 0.3, "1000000000000000"},
		{123456789012345, "123456789012000"},
		{-1.0 / 7, "-0.142857142857"},
		{14, "14"},
		// Ties round away from zero.
		{100000000000.5, "100000000001"},
		{-100000000000.5, "-100000000001"},
		{1234567890.125, "1234567890.13"},
		{999999999999.5, "1000000000000"},
		// Stored just below the tie, so it rounds down.
		{0.1234567890125, "0.123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.in, DefaultPrecision))
		})
	}
}
