package formats

import (
	"strconv"
	"strings"
)

// FloatOrElse parses s as a float32, returning def when s is empty or not a
// number. It never fails.
func FloatOrElse(s string, def float32) float32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return def
	}
	return float32(f)
}
