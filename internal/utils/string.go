package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LastWord returns the trailing partial word of a live input line, the part
// fed to the autocomplete index while the user is still typing. Returns ""
// when the line ends in whitespace (the word is finished).
func LastWord(s string) string {
	last, _ := utf8.DecodeLastRuneInString(s)
	if s == "" || unicode.IsSpace(last) {
		return ""
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// FormatWithCommas renders an integer with thousands separators for
// human-facing dictionary stats.
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
