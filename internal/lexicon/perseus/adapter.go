package perseus

import (
	"encoding/xml"
	"strings"

	"github.com/autocom/glossa/internal/lexicon"
	"github.com/autocom/glossa/internal/sense"
)

// entry is the service's TEI-style response. The orth element already
// carries the accented citation form, so no reconstruction runs.
type entry struct {
	XMLName xml.Name `xml:"entry"`
	Orth    string   `xml:"orth"`
	Pos     string   `xml:"pos"`
	Gen     string   `xml:"gen"`
	Infl    string   `xml:"infl"`
	Senses  []string `xml:"sense"`
}

var posCodes = map[string]lexicon.PartOfSpeech{
	"noun":         lexicon.Noun,
	"verb":         lexicon.Verb,
	"adjective":    lexicon.Adjective,
	"adverb":       lexicon.Adverb,
	"preposition":  lexicon.Preposition,
	"conjunction":  lexicon.Conjunction,
	"pronoun":      lexicon.Pronoun,
	"interjection": lexicon.Interjection,
	"particle":     lexicon.Adverb,
}

var genderCodes = map[string]lexicon.Gender{
	"masc": lexicon.Masculine,
	"fem":  lexicon.Feminine,
	"neut": lexicon.Neuter,
	"comm": lexicon.Common,
}

// Adapter normalizes Perseus XML entries into canonical entries.
type Adapter struct{}

func (Adapter) Normalize(raw []byte, req lexicon.Request) (*lexicon.Entry, error) {
	var e entry
	if err := xml.Unmarshal(raw, &e); err != nil {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "malformed payload", Err: err}
	}
	if e.Orth == "" {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "entry has no citation form"}
	}

	pos, ok := posCodes[e.Pos]
	if !ok {
		pos = lexicon.UnknownPOS
	}

	return &lexicon.Entry{
		Headword:     e.Orth,
		Lemma:        req.Lemma,
		PartOfSpeech: pos,
		Gender:       genderCodes[e.Gen],
		Inflection:   e.Infl,
		Senses:       sense.Clean(strings.Join(e.Senses, "; ")),
		Source:       SourceName,
	}, nil
}
