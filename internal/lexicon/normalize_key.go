package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey produces the cache lookup key for a lemma. Latin keys are
// lowercased with classical orthography applied (j→i, v→u); Greek keys are
// lowercased, NFC-normalized and accent-folded so that editions with and
// without polytonic diacritics share cache records. Trailing homograph
// digits (e.g. "occido2") are stripped for both languages.
func NormalizeKey(lemma string, language Language) string {
	key := strings.ToLower(strings.TrimSpace(lemma))
	key = strings.TrimRightFunc(key, unicode.IsDigit)

	switch language {
	case LanguageGreek:
		key = norm.NFC.String(key)
		if folded, _, err := transform.String(stripAccents, key); err == nil {
			key = folded
		}
	default:
		key = strings.Map(func(r rune) rune {
			switch r {
			case 'j':
				return 'i'
			case 'v':
				return 'u'
			}
			return r
		}, key)
		key = norm.NFC.String(key)
	}
	return key
}
