package domain

import "unicode/utf8"

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// TruncateRunes cuts s to at most n runes.
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
