package whitakers

import (
	"strconv"
	"strings"

	"github.com/autocom/glossa/internal/lexicon"
)

// codeInfo is a parsed Whitaker classification string, e.g. "V 3 4" or
// "N 2 1 M": part of speech, conjugation/declension number, variant, and an
// optional gender letter.
type codeInfo struct {
	POS            lexicon.PartOfSpeech
	Classification int
	Variant        int
	Gender         lexicon.Gender
}

var posCodes = map[string]lexicon.PartOfSpeech{
	"N":      lexicon.Noun,
	"V":      lexicon.Verb,
	"ADJ":    lexicon.Adjective,
	"ADV":    lexicon.Adverb,
	"PREP":   lexicon.Preposition,
	"CONJ":   lexicon.Conjunction,
	"PRON":   lexicon.Pronoun,
	"INTERJ": lexicon.Interjection,
	// Numerals decline like adjectives for citation purposes.
	"NUM": lexicon.Adjective,
	// Whitaker's packons behave as pronouns.
	"PACK": lexicon.Pronoun,
}

var genderCodes = map[string]lexicon.Gender{
	"M": lexicon.Masculine,
	"F": lexicon.Feminine,
	"N": lexicon.Neuter,
	"C": lexicon.Common,
}

// parseCode splits a raw classification string into its parts. Unknown POS
// tokens map to UnknownPOS rather than failing; the entry then cites its
// stem as-is.
func parseCode(code string) codeInfo {
	fields := strings.Fields(code)
	info := codeInfo{POS: lexicon.UnknownPOS}
	if len(fields) == 0 {
		return info
	}

	if pos, ok := posCodes[fields[0]]; ok {
		info.POS = pos
	}
	numbers := 0
	for _, field := range fields[1:] {
		if n, err := strconv.Atoi(field); err == nil {
			switch numbers {
			case 0:
				info.Classification = n
			case 1:
				info.Variant = n
			}
			numbers++
			continue
		}
		if g, ok := genderCodes[field]; ok {
			info.Gender = g
		}
	}
	return info
}
