package currency

import (
	"fmt"
	"math"
)

// Format renders an amount as the symbol followed by the integer value
// grouped with thousands separators, no decimal places.
func Format(symbol string, amount float64) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	intStr := fmt.Sprintf("%.0f", rounded)
	formatted := GroupDigits(intStr, ",")

	result := symbol + formatted
	if negative {
		result = "-" + result
	}

	return result
}

// GroupDigits inserts sep between every group of three digits, counting
// from the right. s must be an unsigned integer string.
func GroupDigits(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
