package expr

import (
	"regexp"
	"strconv"
)

// trailingNumber splits a buffer into the shortest prefix and the number
// that ends it. "200+50" splits as "200+" and "50"; "1.2.5" as "1." and
// "2.5".
var trailingNumber = regexp.MustCompile(`(.*?)(\d+\.?\d*)$`)

// Percent divides the number at the end of s by 100 and returns the
// rewritten text. ok is false when s does not end in a number.
func Percent(s string) (out string, ok bool) {
	m := trailingNumber.FindStringSubmatch(s)
	if m == nil {
		return s, false
	}
	n, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return s, false
	}
	return m[1] + FormatNumber(n/100), true
}
