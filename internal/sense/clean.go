// Package sense normalizes free-text dictionary definition strings into
// ordered, cleaned sense lists.
package sense

import (
	"regexp"
	"strings"
)

var (
	// Editorial and citation annotations: square-bracketed apparatus and
	// angle-bracketed markup. Parenthesized usage notes are kept; printed
	// dictionaries use them as part of the sense.
	annotationRe = regexp.MustCompile(`\[[^\]]*\]|<[^>]*>`)
	// Sense-number markers: arabic ("1.", "2)", "3:") or roman ("II.")
	// numerals that dictionaries use to open a new sense.
	senseMarkerRe = regexp.MustCompile(`(^|\s)(\d+[.):]|[IVXL]+\.)\s+`)
	multiSpaceRe  = regexp.MustCompile(`\s{2,}`)
)

// Clean splits raw definition text into an ordered list of usable senses.
// It strips bracketed annotations, collapses whitespace, splits on the
// semicolon/number-marker conventions, drops empty results and deduplicates
// adjacent identical senses. Clean never fails: an all-annotation input
// yields an empty slice, which callers treat as "no usable sense".
func Clean(raw string) []string {
	if raw == "" {
		return nil
	}

	text := annotationRe.ReplaceAllString(raw, " ")
	// Rewrite sense-number markers as delimiters so both conventions split
	// the same way.
	text = senseMarkerRe.ReplaceAllString(text, ";")

	var senses []string
	for _, part := range strings.Split(text, ";") {
		part = multiSpaceRe.ReplaceAllString(part, " ")
		part = strings.Trim(part, " \t,")
		if part == "" {
			continue
		}
		if len(senses) > 0 && senses[len(senses)-1] == part {
			continue
		}
		senses = append(senses, part)
	}
	return senses
}

// Truncate limits senses to at most max entries. A non-positive max keeps
// the list unchanged.
func Truncate(senses []string, max int) []string {
	if max <= 0 || len(senses) <= max {
		return senses
	}
	return senses[:max]
}
