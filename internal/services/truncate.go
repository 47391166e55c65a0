package services

import "unicode/utf8"

// TruncateRunes cuts text to at most maxRunes runes. maxRunes <= 0 disables
// the limit. The second return value reports whether anything was cut.
func TruncateRunes(text string, maxRunes int) (string, bool) {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text, false
	}

	runes := []rune(text)
	return string(runes[:maxRunes]), true
}
