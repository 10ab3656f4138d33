// Package bytesize renders byte counts with binary-prefix units.
package bytesize

import (
	"math"
	"strconv"
)

const DefaultDecimals = 2

var units = []string{"Bytes", "KB", "MB", "GB"}

// Format renders bytes as "<number> <unit>". Zero is always "0 Bytes" and values past
// the last unit stay in GB. The number carries no trailing zeros.
func Format(bytes int64, decimals int) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if bytes < 0 {
		return "-" + Format(-bytes, decimals)
	}
	if decimals < 0 {
		decimals = 0
	}

	// floor(log1024(bytes)) in integer arithmetic, clamped to the last unit.
	i, divisor := 0, int64(1)
	for i < len(units)-1 && bytes/divisor >= 1024 {
		divisor *= 1024
		i++
	}

	scale := math.Pow(10, float64(decimals))
	value := math.Round(float64(bytes)/float64(divisor)*scale) / scale

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + units[i]
}
