package expr

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of significant digits kept in a result.
const DefaultPrecision = 12

// FormatNumber renders v the way the display shows plain numbers: the
// shortest decimal that round-trips, switching to exponent notation
// ("5e-7", "1e+21") below 1e-6 and from 1e21 up. Negative zero prints
// as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// Round rounds v to precision significant digits, breaking ties away
// from zero: 100000000000.5 becomes 100000000001. A precision below one
// leaves v untouched.
func Round(v float64, precision int) float64 {
	if precision < 1 || precision >= exactDigits || math.IsInf(v, 0) || math.IsNaN(v) || v == 0 {
		return v
	}

	// Every float64 has a finite decimal expansion of at most
	// exactDigits significant digits, so this text is exact.
	s := strconv.FormatFloat(math.Abs(v), 'e', exactDigits-1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return v
	}
	digits := []byte(strings.Replace(mant, ".", "", 1))

	kept := digits[:precision]
	if digits[precision] >= '5' {
		kept = roundUp(kept)
	}

	text := string(kept) + "e" + strconv.Itoa(e-precision+1)
	if v < 0 {
		text = "-" + text
	}
	r, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return v
	}
	return r
}

// exactDigits bounds the significant digits of a float64's exact decimal
// expansion.
const exactDigits = 768

// roundUp adds one to the decimal digit string d, growing it by a
// leading "1" when every digit carries.
func roundUp(d []byte) []byte {
	out := append([]byte(nil), d...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < '9' {
			out[i]++
			return out
		}
		out[i] = '0'
	}
	return append([]byte{'1'}, out...)
}

// FormatResult rounds v to precision significant digits and formats it
// with FormatNumber, so 10/3 becomes "3.33333333333" and 0.1+0.2 "0.3".
func FormatResult(v float64, precision int) string {
	return FormatNumber(Round(v, precision))
}
