package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	plateCompact  = regexp.MustCompile(`^([0-9])([A-Z]{3})([0-9]{3})$`)
	timeOfDayRe   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	nonPlateChars = regexp.MustCompile(`[^0-9A-Z]`)
)

// TitleCase normalizes free text: trims, collapses whitespace and upper-cases
// the first letter of every word
func TitleCase(s string) string {
	s = multiSpaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
	if s == "" {
		return s
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// NormalizePlate reformats a vehicle plate to the D-LLL-DDD regional form
// (e.g. "1abc123" -> "1-ABC-123"). The second result is false when the input
// cannot be shaped into a valid plate.
func NormalizePlate(s string) (string, bool) {
	compact := nonPlateChars.ReplaceAllString(strings.ToUpper(s), "")
	m := plateCompact.FindStringSubmatch(compact)
	if m == nil {
		return "", false
	}
	return m[1] + "-" + m[2] + "-" + m[3], true
}

// ValidTimeOfDay reports whether s is a 24h HH:MM time
func ValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}
