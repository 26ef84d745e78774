package ingredient

import (
	"strconv"
	"strings"

	"github.com/pantrychef/v1/internal/domain/measurement"
)

// Parse warnings use fixed prefixes so callers can group them.
const (
	warnLowConfidence = "low-confidence parse"
	warnMixedCompound = "mixed units in compound quantity; kept first term"
)

// unicodeFractions maps fraction glyphs to their ASCII spelling. A
// leading space keeps "1½" readable as the mixed number "1 1/2".
var unicodeFractions = map[rune]string{
	'¼': " 1/4", '½': " 1/2", '¾': " 3/4",
	'⅓': " 1/3", '⅔': " 2/3",
	'⅕': " 1/5", '⅖': " 2/5", '⅗': " 3/5", '⅘': " 4/5",
	'⅙': " 1/6", '⅚': " 5/6",
	'⅛': " 1/8", '⅜': " 3/8", '⅝': " 5/8", '⅞': " 7/8",
}

// ParseLine splits a free-text ingredient line into a quantity and the
// remaining name. It never fails: unparseable input yields a zero
// quantity plus a low-confidence warning.
func ParseLine(text string) (measurement.Quantity, string, []string) {
	var warnings []string

	raw := strings.TrimSpace(text)
	if raw == "" {
		return measurement.Quantity{}, "", []string{warnLowConfidence + ": empty ingredient line"}
	}

	tokens := strings.Fields(expandGlyphs(raw))

	amount, idx, ok := scanAmount(tokens, 0)
	if !ok {
		warnings = append(warnings, warnLowConfidence+": no quantity found in "+strconv.Quote(raw))
		return measurement.Quantity{}, strings.ToLower(raw), warnings
	}

	var unit *measurement.Unit
	if u, n, found := measurement.LookupLongest(tokens[idx:]); found {
		unit = &u
		idx += n
	}

	// Additive compound: "1/4 cup + 3 tbsp". Terms in the same domain
	// are summed into the first term's unit; otherwise the first term
	// stands and a warning records the dropped term.
	if idx < len(tokens) && tokens[idx] == "+" {
		amt2, j, ok2 := scanAmount(tokens, idx+1)
		if ok2 {
			var unit2 *measurement.Unit
			if u2, n2, found := measurement.LookupLongest(tokens[j:]); found {
				unit2 = &u2
				j += n2
			}
			converted, err := measurement.ConvertQuantity(amt2, unit2, unit)
			if err == nil {
				amount += converted
			} else {
				warnings = append(warnings, warnMixedCompound)
			}
			idx = j
		}
	}

	name := strings.Join(tokens[idx:], " ")
	name = strings.TrimPrefix(strings.ToLower(name), "of ")
	name = strings.Trim(name, " ,.")

	return measurement.NewQuantity(amount, unit), name, warnings
}

// scanAmount reads a numeric amount starting at tokens[i]: an integer,
// a decimal, a fraction, a mixed number ("2 1/4") or a range ("1-2",
// averaged). It returns the amount and the index past what it consumed.
func scanAmount(tokens []string, i int) (float64, int, bool) {
	if i >= len(tokens) {
		return 0, i, false
	}
	amount, ok := parseNumber(tokens[i])
	if !ok {
		return 0, i, false
	}
	i++

	// Mixed number: a whole part followed by a simple fraction.
	if i < len(tokens) && amount == float64(int64(amount)) {
		if frac, isFrac := parseFraction(tokens[i]); isFrac {
			amount += frac
			i++
		}
	}
	return amount, i, true
}

// parseNumber handles "2", "2.5", "1/2" and the range form "1-2".
func parseNumber(tok string) (float64, bool) {
	tok = strings.Trim(tok, ",.")
	if tok == "" {
		return 0, false
	}

	if lo, hi, ok := splitRange(tok); ok {
		return (lo + hi) / 2, true
	}
	if frac, ok := parseFraction(tok); ok {
		return frac, true
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v, true
	}
	return 0, false
}

func parseFraction(tok string) (float64, bool) {
	num, den, found := strings.Cut(tok, "/")
	if !found {
		return 0, false
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

func splitRange(tok string) (float64, float64, bool) {
	lo, hi, found := strings.Cut(tok, "-")
	if !found || lo == "" || hi == "" {
		return 0, 0, false
	}
	l, ok1 := parseRangeSide(lo)
	h, ok2 := parseRangeSide(hi)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return l, h, true
}

func parseRangeSide(s string) (float64, bool) {
	if frac, ok := parseFraction(s); ok {
		return frac, true
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func expandGlyphs(s string) string {
	var b strings.Builder
	for _, r := range s {
		if ascii, ok := unicodeFractions[r]; ok {
			b.WriteString(ascii)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
