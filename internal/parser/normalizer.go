package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Normalizer merges a message's text and HTML bodies into one searchable
// plain string
type Normalizer struct {
	tagRegex      *regexp.Regexp
	digitGapRegex *regexp.Regexp
	spaceRegex    *regexp.Regexp
}

// NewNormalizer creates a new normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{
		// Fallback tag stripper for HTML goquery cannot parse
		tagRegex: regexp.MustCompile(`<[^>]+>`),
		// Digits separated only by whitespace belong to the same run
		digitGapRegex: regexp.MustCompile(`(\d)\s+(\d)`),
		spaceRegex:    regexp.MustCompile(`\s+`),
	}
}

// Normalize joins the html fragments, strips markup, appends the result to
// text and rejoins digit runs split by whitespace. Deterministic and
// idempotent on already-clean text.
func (n *Normalizer) Normalize(text string, html []string) string {
	merged := text
	if len(html) > 0 {
		merged += n.stripTags(strings.Join(html, " "))
	}

	merged = n.spaceRegex.ReplaceAllString(merged, " ")

	// Collapse to a fixpoint so "1 2 3 4 5 6" becomes "123456"; a single
	// left-to-right pass leaves every other gap intact.
	for {
		out := n.digitGapRegex.ReplaceAllString(merged, "$1$2")
		if out == merged {
			break
		}
		merged = out
	}

	return strings.TrimSpace(merged)
}

// stripTags extracts text content from HTML markup
func (n *Normalizer) stripTags(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return n.tagRegex.ReplaceAllString(html, " ")
	}
	doc.Find("script, style, head, meta, link").Remove()
	return doc.Text()
}
