// Package lexicon provides the canonical dictionary-entry model and the
// lookup façade that orchestrates cached dictionary sources.
package lexicon

import "strings"

// Language identifies which classical language a lookup targets.
type Language string

const (
	LanguageLatin Language = "latin"
	LanguageGreek Language = "greek"
)

// PartOfSpeech is the canonical part-of-speech enumeration shared by all
// dictionary sources.
type PartOfSpeech string

const (
	Noun         PartOfSpeech = "NOUN"
	Verb         PartOfSpeech = "VERB"
	Adjective    PartOfSpeech = "ADJECTIVE"
	Adverb       PartOfSpeech = "ADVERB"
	Preposition  PartOfSpeech = "PREPOSITION"
	Conjunction  PartOfSpeech = "CONJUNCTION"
	Pronoun      PartOfSpeech = "PRONOUN"
	Interjection PartOfSpeech = "INTERJECTION"
	UnknownPOS   PartOfSpeech = "UNKNOWN"
)

// Gender is the grammatical gender of a noun entry. The empty string means
// absent; a NOUN entry always carries one of the four values.
type Gender string

const (
	Masculine Gender = "MASCULINE"
	Feminine  Gender = "FEMININE"
	Neuter    Gender = "NEUTER"
	Common    Gender = "COMMON"
)

// Voice classifies a verb's morphology-to-meaning relationship.
// Non-verb entries carry the empty string.
type Voice string

const (
	Active       Voice = "ACTIVE"
	Passive      Voice = "PASSIVE"
	Deponent     Voice = "DEPONENT"
	SemiDeponent Voice = "SEMI_DEPONENT"
)

// LatinPrincipalParts holds the four Latin citation forms. Defective verbs
// keep empty strings; the fields are never omitted.
type LatinPrincipalParts struct {
	Present    string `json:"present"`
	Infinitive string `json:"infinitive"`
	Perfect    string `json:"perfect"`
	Supine     string `json:"supine"`
}

// Forms returns the four parts in citation order.
func (p LatinPrincipalParts) Forms() []string {
	return []string{p.Present, p.Infinitive, p.Perfect, p.Supine}
}

// String renders the parts the way a printed dictionary cites them,
// skipping forms a defective verb lacks.
func (p LatinPrincipalParts) String() string {
	var forms []string
	for _, f := range p.Forms() {
		if f != "" {
			forms = append(forms, f)
		}
	}
	return strings.Join(forms, ", ")
}

// GreekPrincipalParts holds the six Greek tense-stem citation forms.
// Missing stems are empty strings, never omitted.
type GreekPrincipalParts struct {
	Present       string `json:"present"`
	Future        string `json:"future"`
	Aorist        string `json:"aorist"`
	PerfectActive string `json:"perfect_active"`
	PerfectMiddle string `json:"perfect_middle"`
	AoristPassive string `json:"aorist_passive"`
}

// Forms returns the six parts in citation order.
func (p GreekPrincipalParts) Forms() []string {
	return []string{p.Present, p.Future, p.Aorist, p.PerfectActive, p.PerfectMiddle, p.AoristPassive}
}

// String renders the attested parts in citation order.
func (p GreekPrincipalParts) String() string {
	var forms []string
	for _, f := range p.Forms() {
		if f != "" {
			forms = append(forms, f)
		}
	}
	return strings.Join(forms, ", ")
}

// Entry is a normalized dictionary entry: one canonical record per headword,
// immutable once built. Re-normalizing a payload replaces the entry, it never
// mutates one in place.
type Entry struct {
	// Headword is the dictionary citation form: nominative singular for
	// nouns, first-person-singular present for verbs,
	// masculine-nominative-singular for adjectives. Never a bare stem.
	Headword string `json:"headword"`
	// Lemma is the analysis-backend form; it may differ from Headword in
	// capitalization.
	Lemma        string               `json:"lemma"`
	PartOfSpeech PartOfSpeech         `json:"part_of_speech"`
	Gender       Gender               `json:"gender,omitempty"`
	LatinParts   *LatinPrincipalParts `json:"latin_parts,omitempty"`
	GreekParts   *GreekPrincipalParts `json:"greek_parts,omitempty"`
	Voice        Voice                `json:"voice,omitempty"`
	// Inflection is the genitive-or-equivalent citation marker for the
	// downstream gloss record (e.g. "-ae" for a first-declension noun).
	Inflection     string   `json:"inflection,omitempty"`
	PluraliaTantum bool     `json:"pluralia_tantum,omitempty"`
	Senses         []string `json:"senses"`
	// Source names the dictionary the entry was normalized from.
	Source string `json:"source"`
	// LowConfidence marks entries whose headword fell back to the raw stem
	// because no reconstruction rule matched.
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// PrincipalPartForms returns whichever principal-part set the entry carries,
// or nil for non-verbs.
func (e *Entry) PrincipalPartForms() []string {
	switch {
	case e.LatinParts != nil:
		return e.LatinParts.Forms()
	case e.GreekParts != nil:
		return e.GreekParts.Forms()
	default:
		return nil
	}
}

// Request is the upstream lookup request from the enrichment stage. POSHint
// is optional; adapters use it only to break ties between homographs.
type Request struct {
	Lemma    string
	Language Language
	POSHint  PartOfSpeech
}

// GlossRecord is the fixed-shape record the enrichment and rendering stages
// consume.
type GlossRecord struct {
	Headword       string
	Inflection     string
	GenderAbbrev   string
	POSAbbrev      string
	PrincipalParts []string
	Senses         []string
}

var posAbbrevs = map[PartOfSpeech]string{
	Noun:         "n.",
	Verb:         "v.",
	Adjective:    "adj.",
	Adverb:       "adv.",
	Preposition:  "prep.",
	Conjunction:  "conj.",
	Pronoun:      "pron.",
	Interjection: "interj.",
}

var genderAbbrevs = map[Gender]string{
	Masculine: "m.",
	Feminine:  "f.",
	Neuter:    "n.",
	Common:    "c.",
}

// Gloss builds the downstream gloss record from the entry.
func (e *Entry) Gloss() GlossRecord {
	return GlossRecord{
		Headword:       e.Headword,
		Inflection:     e.Inflection,
		GenderAbbrev:   genderAbbrevs[e.Gender],
		POSAbbrev:      posAbbrevs[e.PartOfSpeech],
		PrincipalParts: e.PrincipalPartForms(),
		Senses:         e.Senses,
	}
}
