package services

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeText trims surrounding whitespace and returns the NFC form.
// ok is false when nothing but whitespace remains.
func normalizeText(text string) (normalized string, ok bool) {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return "", false
	}
	return text, true
}

// CleanText drops blank lines and trims every remaining line.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
