package geometry

import "strconv"

// FormatNumber prints v with the shortest representation that round-trips,
// without exponent notation.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
