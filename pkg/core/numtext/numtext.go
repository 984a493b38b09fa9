// Package numtext normalizes the heterogeneous numeric and date text found in
// DART filing cells: comma-grouped amounts, parenthesized negatives, unit
// suffixes, and half a dozen date spellings.
package numtext

import (
	"regexp"
	"strconv"
	"strings"
)

var nonNumericPattern = regexp.MustCompile(`[^0-9.\-]`)

// CleanNumber extracts a numeric value from raw cell text.
// Parentheses force the value negative regardless of any embedded sign.
// Empty input, a bare dash, or anything unparseable returns 0; the function
// never fails, callers rely on the zero value as "not a number".
func CleanNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return 0
	}

	isNegative := strings.Contains(raw, "(") && strings.Contains(raw, ")")

	cleaned := nonNumericPattern.ReplaceAllString(raw, "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	if isNegative && value > 0 {
		value = -value
	}
	return value
}

// FormatNumber renders a value as a thousands-separated integer string.
// The fractional part is truncated toward zero, matching the display style of
// DART statement tables ("145,463,485").
func FormatNumber(value float64) string {
	n := int64(value)

	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

var datePatterns = []*regexp.Regexp{
	// 2025년 3월 15일 / 2025-03-15 / 2025.3.15
	regexp.MustCompile(`(\d{4})[년\-.]\s*(\d{1,2})[월\-.]\s*(\d{1,2})`),
	// Bare digit run 20250315
	regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`),
}

// FormatDate normalizes a filing date cell to "YYYY-MM-DD".
// Placeholder cells ("-", empty) and text matching no known date shape yield
// "", so schedule fields are always either empty or fully normalized.
func FormatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return ""
	}

	for _, pattern := range datePatterns {
		m := pattern.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		year := m[1]
		month := m[2]
		day := m[3]
		if len(month) == 1 {
			month = "0" + month
		}
		if len(day) == 1 {
			day = "0" + day
		}
		return year + "-" + month + "-" + day
	}

	return ""
}
