// SPDX-License-Identifier: MIT
package tokens

import (
	"math"
	"strconv"
)

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(round(v, 3), 'f', -1, 64)
}

func pxString(v float64) string {
	return formatFloat(v) + "px"
}

func msString(v int) string {
	return strconv.Itoa(v) + "ms"
}
