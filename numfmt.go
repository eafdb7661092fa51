package klv

import (
	"strconv"
	"strings"
)

// appendFloat renders f with the minimal number of decimal digits that
// round-trips exactly, without scientific notation.
func appendFloat(b *strings.Builder, f float64) {
	b.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
}
