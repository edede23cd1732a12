package morpheus

import "github.com/autocom/glossa/internal/lexicon"

// The morphology service spells its codes out in full, unlike the
// single-letter Whitaker tables.

var posCodes = map[string]lexicon.PartOfSpeech{
	"noun":         lexicon.Noun,
	"verb":         lexicon.Verb,
	"adjective":    lexicon.Adjective,
	"adverb":       lexicon.Adverb,
	"preposition":  lexicon.Preposition,
	"conjunction":  lexicon.Conjunction,
	"pronoun":      lexicon.Pronoun,
	"interjection": lexicon.Interjection,
	"exclamation":  lexicon.Interjection,
	"numeral":      lexicon.Adjective,
}

var genderCodes = map[string]lexicon.Gender{
	"masculine": lexicon.Masculine,
	"feminine":  lexicon.Feminine,
	"neuter":    lexicon.Neuter,
	"common":    lexicon.Common,
}

func partOfSpeech(pofs string) lexicon.PartOfSpeech {
	if pos, ok := posCodes[pofs]; ok {
		return pos
	}
	return lexicon.UnknownPOS
}
