// Package greek rebuilds Ancient Greek dictionary citation forms from raw
// tense stems and inflectional classification codes.
package greek

import (
	"github.com/autocom/glossa/internal/lexicon"
)

// StemType classifies which inflectional pattern produced a raw stem.
type StemType string

const (
	// Omega covers thematic verbs in -ω. Contract verbs carry their
	// contract vowel in the stem, so the same ending rule applies.
	Omega      StemType = "omega"
	Contract   StemType = "contract"
	Mi         StemType = "mi"
	Decl1Eta   StemType = "decl1eta"
	Decl1Alpha StemType = "decl1alpha"
	Decl2      StemType = "decl2"
	Decl2N     StemType = "decl2n"
	Decl3      StemType = "decl3"
	Adj12      StemType = "adj12"
	Adj3       StemType = "adj3"
	Indecl     StemType = "indecl"
)

// TenseStems is the six-stem set a raw Greek payload supplies. Stems the
// source does not attest stay empty and produce empty principal parts,
// never omitted fields.
type TenseStems struct {
	Present       string
	Future        string
	Aorist        string
	PerfectActive string
	PerfectMiddle string
	AoristPassive string
}

// Input carries one raw analysis into the reconstruction engine.
type Input struct {
	// Stem is the primary raw stem; capitalization is preserved into the
	// headword.
	Stem   string
	Type   StemType
	POS    lexicon.PartOfSpeech
	Stems  TenseStems
	Gender lexicon.Gender
	// Morphology flags from the raw payload.
	PassiveOnly    bool
	PerfectPassive bool
	ActiveMeaning  bool
	PluraliaTantum bool
}

// Result is the reconstructed citation data for one analysis.
type Result struct {
	Headword   string
	Parts      *lexicon.GreekPrincipalParts
	Voice      lexicon.Voice
	Inflection string
	Gender     lexicon.Gender
}

type verbPattern struct {
	present    string
	depPresent string
}

var verbPatterns = map[StemType]verbPattern{
	Omega:    {present: "ω", depPresent: "ομαι"},
	Contract: {present: "ω", depPresent: "ομαι"},
	Mi:       {present: "μι", depPresent: "μαι"},
}

// Tense-stem endings for the non-present parts. The stems arrive with their
// augments, reduplication and accents already in place (ἐλύθη + ν), so the
// endings are uniform across patterns.
const (
	futureEnding        = "ω"
	aoristEnding        = "α"
	perfectActiveEnding = "α"
	perfectMiddleEnding = "μαι"
	aoristPassiveEnding = "ν"
	depFutureEnding     = "ομαι"
	depAoristEnding     = "μην"
)

type nominalPattern struct {
	suffix     string
	inflection string
	gender     lexicon.Gender
}

var nounPatterns = map[StemType]nominalPattern{
	Decl1Eta:   {suffix: "η", inflection: "-ης", gender: lexicon.Feminine},
	Decl1Alpha: {suffix: "α", inflection: "-ας", gender: lexicon.Feminine},
	Decl2:      {suffix: "ος", inflection: "-ου", gender: lexicon.Masculine},
	Decl2N:     {suffix: "ον", inflection: "-ου", gender: lexicon.Neuter},
	// Third-declension nominatives arrive already in citation form.
	Decl3: {inflection: "-ος", gender: lexicon.Common},
}

// Pluralia tantum nouns cite the nominative plural. Only the first two
// declensions have a regular plural citation.
var pluralNounPatterns = map[StemType]nominalPattern{
	Decl1Eta:   {suffix: "αι", inflection: "-ων", gender: lexicon.Feminine},
	Decl1Alpha: {suffix: "αι", inflection: "-ων", gender: lexicon.Feminine},
	Decl2:      {suffix: "οι", inflection: "-ων", gender: lexicon.Masculine},
	Decl2N:     {suffix: "α", inflection: "-ων", gender: lexicon.Neuter},
}

var adjPatterns = map[StemType]nominalPattern{
	Adj12:  {suffix: "ος", inflection: "-η, -ον"},
	Adj3:   {inflection: "-ες"},
	Indecl: {},
}

// Reconstruct rebuilds the dictionary citation form for one raw analysis.
// An unknown (stem type, POS) combination yields a ReconstructionError;
// callers keep the raw stem as a best-effort headword and mark the entry
// low-confidence.
func Reconstruct(in Input) (Result, error) {
	switch in.POS {
	case lexicon.Verb:
		return reconstructVerb(in)
	case lexicon.Noun:
		if in.PluraliaTantum {
			if p, ok := pluralNounPatterns[in.Type]; ok {
				g := in.Gender
				if g == "" {
					g = p.gender
				}
				return Result{
					Headword:   in.Stem + p.suffix,
					Inflection: p.inflection,
					Gender:     g,
				}, nil
			}
		}
		if p, ok := nounPatterns[in.Type]; ok {
			g := in.Gender
			if g == "" {
				g = p.gender
			}
			return Result{
				Headword:   in.Stem + p.suffix,
				Inflection: p.inflection,
				Gender:     g,
			}, nil
		}
	case lexicon.Adjective:
		if p, ok := adjPatterns[in.Type]; ok {
			return Result{
				Headword:   in.Stem + p.suffix,
				Inflection: p.inflection,
			}, nil
		}
	default:
		return Result{Headword: in.Stem}, nil
	}

	return Result{}, &lexicon.ReconstructionError{StemType: string(in.Type), POS: in.POS}
}

func reconstructVerb(in Input) (Result, error) {
	p, ok := verbPatterns[in.Type]
	if !ok {
		return Result{}, &lexicon.ReconstructionError{StemType: string(in.Type), POS: lexicon.Verb}
	}

	stems := in.Stems
	if stems.Present == "" {
		stems.Present = in.Stem
	}
	voice := classifyVoice(in)

	parts := &lexicon.GreekPrincipalParts{}
	if voice == lexicon.Deponent {
		parts.Present = stems.Present + p.depPresent
		parts.Future = attach(stems.Future, depFutureEnding)
		parts.Aorist = attach(stems.Aorist, depAoristEnding)
	} else {
		parts.Present = stems.Present + p.present
		parts.Future = attach(stems.Future, futureEnding)
		parts.Aorist = attach(stems.Aorist, aoristEnding)
		parts.PerfectActive = attach(stems.PerfectActive, perfectActiveEnding)
	}
	parts.PerfectMiddle = attach(stems.PerfectMiddle, perfectMiddleEnding)
	parts.AoristPassive = attach(stems.AoristPassive, aoristPassiveEnding)

	return Result{
		Headword: parts.Present,
		Parts:    parts,
		Voice:    voice,
	}, nil
}

// attach keeps missing stems as empty parts instead of emitting a bare
// ending.
func attach(stem, ending string) string {
	if stem == "" {
		return ""
	}
	return stem + ending
}

func classifyVoice(in Input) lexicon.Voice {
	switch {
	case in.PassiveOnly && in.ActiveMeaning:
		return lexicon.Deponent
	case in.PerfectPassive:
		return lexicon.SemiDeponent
	case in.PassiveOnly:
		return lexicon.Passive
	default:
		return lexicon.Active
	}
}
