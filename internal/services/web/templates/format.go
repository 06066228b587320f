package templates

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/number"
)

const cardTitleLimit = 30

// Number formats v with locale digit grouping and at most two decimals.
func Number(loc Localizer, v float64) string {
	if loc == nil {
		return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	}
	return loc.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// Fixed2 formats v with locale digit grouping and exactly two decimals.
func Fixed2(loc Localizer, v float64) string {
	if loc == nil {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return loc.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// AED formats an amount in dirhams.
func AED(loc Localizer, v float64) string {
	return T(loc, "web.format.aed", Number(loc, v))
}

// Price formats a listing price with its rent frequency, if any.
func Price(loc Localizer, price float64, rentFrequency string) string {
	amount := AED(loc, price)
	if rentFrequency = strings.TrimSpace(rentFrequency); rentFrequency != "" {
		return amount + "/" + rentFrequency
	}
	return amount
}

// Millify abbreviates v with one decimal: 1234 becomes "1.2K".
func Millify(v float64) string {
	units := []struct {
		size   float64
		suffix string
	}{
		{size: 1e12, suffix: "T"},
		{size: 1e9, suffix: "B"},
		{size: 1e6, suffix: "M"},
		{size: 1e3, suffix: "K"},
	}
	abs := math.Abs(v)
	for _, unit := range units {
		if abs >= unit.size {
			scaled := math.Round(v/unit.size*10) / 10
			return strconv.FormatFloat(scaled, 'f', -1, 64) + unit.suffix
		}
	}
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Truncate shortens s to limit runes, marking the cut with "...".
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
