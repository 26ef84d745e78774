package measurement

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Common cooking fractions, checked in order. 1/3 and 2/3 are kept as
// thirds rather than forced onto an eighths grid.
var fractions = []struct {
	value float64
	text  string
}{
	{1.0 / 8.0, "1/8"},
	{1.0 / 4.0, "1/4"},
	{1.0 / 3.0, "1/3"},
	{3.0 / 8.0, "3/8"},
	{1.0 / 2.0, "1/2"},
	{5.0 / 8.0, "5/8"},
	{2.0 / 3.0, "2/3"},
	{3.0 / 4.0, "3/4"},
	{7.0 / 8.0, "7/8"},
}

const fractionTolerance = 0.01

// FormatAmount renders a decimal amount the way a cook would write it:
// whole numbers plain, common fractions as "3/8" or "2 1/4", anything
// else as a trimmed decimal.
func FormatAmount(amount float64) string {
	if amount < 0 {
		amount = 0
	}
	whole := math.Floor(amount)
	frac := amount - whole

	if frac < fractionTolerance {
		if whole == 0 && frac > 0 {
			// fall through to decimal for tiny amounts
		} else {
			return strconv.FormatFloat(whole, 'f', -1, 64)
		}
	}
	if frac > 1-fractionTolerance {
		return strconv.FormatFloat(whole+1, 'f', -1, 64)
	}

	for _, f := range fractions {
		if math.Abs(frac-f.value) <= fractionTolerance {
			if whole == 0 {
				return f.text
			}
			return fmt.Sprintf("%d %s", int64(whole), f.text)
		}
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
