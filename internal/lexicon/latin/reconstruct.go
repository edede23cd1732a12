// Package latin rebuilds Latin dictionary citation forms from raw stems and
// inflectional classification codes.
package latin

import (
	"github.com/autocom/glossa/internal/lexicon"
)

// StemType classifies which inflectional pattern produced a raw stem.
type StemType string

const (
	Conj1   StemType = "conj1"
	Conj2   StemType = "conj2"
	Conj3   StemType = "conj3"
	Conj3IO StemType = "conj3io"
	Conj4   StemType = "conj4"
	Decl1   StemType = "decl1"
	Decl2   StemType = "decl2"
	Decl2N  StemType = "decl2n"
	Decl3   StemType = "decl3"
	Decl4   StemType = "decl4"
	Decl5   StemType = "decl5"
	Adj12   StemType = "adj12"
	Adj3    StemType = "adj3"
	Indecl  StemType = "indecl"
)

// StemTypeFor maps a Whitaker-style numeric classification (conjugation or
// declension number plus variant) onto a StemType. The bool result reports
// whether the combination is known.
func StemTypeFor(pos lexicon.PartOfSpeech, classification, variant int) (StemType, bool) {
	switch pos {
	case lexicon.Verb:
		switch classification {
		case 1:
			return Conj1, true
		case 2:
			return Conj2, true
		case 3:
			if variant == 4 {
				// Whitaker files -io verbs of the third under variant 4.
				return Conj3IO, true
			}
			return Conj3, true
		case 4:
			return Conj4, true
		}
	case lexicon.Noun:
		switch classification {
		case 1:
			return Decl1, true
		case 2:
			if variant == 2 {
				return Decl2N, true
			}
			return Decl2, true
		case 3:
			return Decl3, true
		case 4:
			return Decl4, true
		case 5:
			return Decl5, true
		}
	case lexicon.Adjective:
		switch classification {
		case 1, 2:
			return Adj12, true
		case 3:
			return Adj3, true
		case 9, 0:
			return Indecl, true
		}
	default:
		return Indecl, true
	}
	return "", false
}

// Stems is the verb stem set a raw payload supplies: present, perfect and
// supine stems. Defective verbs leave stems empty.
type Stems struct {
	Present string
	Perfect string
	Supine  string
}

// Input carries one raw analysis into the reconstruction engine.
type Input struct {
	// Stem is the primary raw stem; capitalization is preserved into the
	// headword, so a proper noun's uppercase first letter survives.
	Stem string
	Type StemType
	POS  lexicon.PartOfSpeech
	// Stems supplies the verb stem set. Present falls back to Stem when
	// empty.
	Stems Stems
	// Gender from the source's code table; refines noun patterns whose
	// ending depends on it.
	Gender lexicon.Gender
	// Morphology flags from the raw payload.
	PassiveOnly    bool // all systems passive in form
	PerfectPassive bool // only the perfect system passive in form
	ActiveMeaning  bool // passive form carries active meaning
	PluraliaTantum bool
}

// Result is the reconstructed citation data for one analysis.
type Result struct {
	Headword   string
	Parts      *lexicon.LatinPrincipalParts
	Voice      lexicon.Voice
	Inflection string
	// Gender is the pattern-implied gender, used when the source code
	// carried none.
	Gender lexicon.Gender
}

// rule is a collatinus-style ending-construction rule: remove strip runes
// from the end of the stem, then append suffix. The zero rule keeps the stem
// as-is (third-declension nominatives arrive already in citation form).
type rule struct {
	strip  int
	suffix string
}

func (r rule) apply(stem string) string {
	if stem == "" {
		return ""
	}
	runes := []rune(stem)
	if r.strip > 0 && r.strip < len(runes) {
		runes = runes[:len(runes)-r.strip]
	}
	return string(runes) + r.suffix
}

type verbPattern struct {
	present    rule
	infinitive rule
	depPresent rule
	depInfin   rule
}

// Active endings attach to the present stem, the perfect to the perfect
// stem plus -i, the supine to the supine stem plus -um. Deponents take the
// passive first-person marker and cite the perfect periphrastically.
var verbPatterns = map[StemType]verbPattern{
	Conj1:   {present: rule{0, "o"}, infinitive: rule{0, "are"}, depPresent: rule{0, "or"}, depInfin: rule{0, "ari"}},
	Conj2:   {present: rule{0, "eo"}, infinitive: rule{0, "ere"}, depPresent: rule{0, "eor"}, depInfin: rule{0, "eri"}},
	Conj3:   {present: rule{0, "o"}, infinitive: rule{0, "ere"}, depPresent: rule{0, "or"}, depInfin: rule{0, "i"}},
	Conj3IO: {present: rule{0, "io"}, infinitive: rule{0, "ere"}, depPresent: rule{0, "ior"}, depInfin: rule{0, "i"}},
	Conj4:   {present: rule{0, "io"}, infinitive: rule{0, "ire"}, depPresent: rule{0, "ior"}, depInfin: rule{0, "iri"}},
}

type nounPattern struct {
	headword   rule
	inflection string
	gender     lexicon.Gender
}

var nounPatterns = map[StemType]nounPattern{
	Decl1:  {headword: rule{0, "a"}, inflection: "-ae", gender: lexicon.Feminine},
	Decl2:  {headword: rule{0, "us"}, inflection: "-i", gender: lexicon.Masculine},
	Decl2N: {headword: rule{0, "um"}, inflection: "-i", gender: lexicon.Neuter},
	Decl3:  {headword: rule{}, inflection: "-is", gender: lexicon.Common},
	Decl4:  {headword: rule{0, "us"}, inflection: "-us", gender: lexicon.Masculine},
	Decl5:  {headword: rule{0, "es"}, inflection: "-ei", gender: lexicon.Feminine},
}

// Pluralia tantum nouns cite the nominative plural (arma, -orum). Only the
// first two declensions have a regular plural citation; the rest keep their
// singular pattern.
var pluralNounPatterns = map[StemType]nounPattern{
	Decl1:  {headword: rule{0, "ae"}, inflection: "-arum", gender: lexicon.Feminine},
	Decl2:  {headword: rule{0, "i"}, inflection: "-orum", gender: lexicon.Masculine},
	Decl2N: {headword: rule{0, "a"}, inflection: "-orum", gender: lexicon.Neuter},
}

type adjPattern struct {
	headword   rule
	inflection string
}

var adjPatterns = map[StemType]adjPattern{
	Adj12:  {headword: rule{0, "us"}, inflection: "-a, -um"},
	Adj3:   {headword: rule{}, inflection: "-is"},
	Indecl: {headword: rule{}},
}

// Reconstruct rebuilds the dictionary citation form for one raw analysis.
// The override table is consulted first (exact match on stem and POS); the
// general pattern table follows. An unknown (stem type, POS) combination
// yields a ReconstructionError; callers keep the raw stem as a best-effort
// headword and mark the entry low-confidence.
func Reconstruct(in Input) (Result, error) {
	if ov, ok := lookupOverride(in.Stem, in.POS); ok {
		return ov.result(), nil
	}

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
					Headword:   p.headword.apply(in.Stem),
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
				Headword:   p.headword.apply(in.Stem),
				Inflection: p.inflection,
				Gender:     g,
			}, nil
		}
	case lexicon.Adjective:
		if p, ok := adjPatterns[in.Type]; ok {
			return Result{
				Headword:   p.headword.apply(in.Stem),
				Inflection: p.inflection,
			}, nil
		}
	default:
		// Uninflected classes cite the stem itself.
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

	parts := &lexicon.LatinPrincipalParts{}
	if voice == lexicon.Deponent {
		parts.Present = p.depPresent.apply(stems.Present)
		parts.Infinitive = p.depInfin.apply(stems.Present)
		if stems.Supine != "" {
			parts.Perfect = rule{0, "us sum"}.apply(stems.Supine)
		}
	} else {
		parts.Present = p.present.apply(stems.Present)
		parts.Infinitive = p.infinitive.apply(stems.Present)
		if voice == lexicon.SemiDeponent {
			if stems.Supine != "" {
				parts.Perfect = rule{0, "us sum"}.apply(stems.Supine)
			}
		} else {
			if stems.Perfect != "" {
				parts.Perfect = rule{0, "i"}.apply(stems.Perfect)
			}
			if stems.Supine != "" {
				parts.Supine = rule{0, "um"}.apply(stems.Supine)
			}
		}
	}

	return Result{
		Headword: parts.Present,
		Parts:    parts,
		Voice:    voice,
	}, nil
}

// classifyVoice applies the raw morphology flags: passive-only with active
// meaning is deponent, a passive-in-form perfect system alone is
// semi-deponent, passive-only without active meaning is a true passive.
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
