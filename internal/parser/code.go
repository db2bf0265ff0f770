package parser

import "regexp"

// CodeExtractor finds 6-digit verification codes in normalized text
type CodeExtractor struct {
	codeRegex *regexp.Regexp
}

// NewCodeExtractor creates a new code extractor
func NewCodeExtractor() *CodeExtractor {
	return &CodeExtractor{
		// Exactly six digits on word boundaries; longer digit runs never match
		codeRegex: regexp.MustCompile(`\b(\d{6})\b`),
	}
}

// Extract returns the first 6-digit code in text, or ok=false when there is
// none. Never fails on absence.
func (e *CodeExtractor) Extract(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	m := e.codeRegex.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
