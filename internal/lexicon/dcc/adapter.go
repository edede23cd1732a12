package dcc

import (
	"encoding/json"
	"errors"

	"github.com/autocom/glossa/internal/lexicon"
	"github.com/autocom/glossa/internal/lexicon/greek"
	"github.com/autocom/glossa/internal/sense"
)

// Adapter normalizes core-list records into canonical entries.
type Adapter struct{}

// Normalize decodes one raw record and reconstructs its citation form. A
// failed reconstruction keeps the raw stem as the headword and marks the
// entry low-confidence instead of failing the lookup.
func (Adapter) Normalize(raw []byte, req lexicon.Request) (*lexicon.Entry, error) {
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "malformed record", Err: err}
	}
	if row.Stem == "" {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "record has no stem"}
	}

	pos := partOfSpeech(row.POS)
	entry := &lexicon.Entry{
		Lemma:          req.Lemma,
		PartOfSpeech:   pos,
		Gender:         genderCodes[row.Gender],
		PluraliaTantum: hasFlag(row.Flags, "pluralia"),
		Senses:         sense.Clean(row.Senses),
		Source:         SourceName,
	}

	stemType, known := stemTypes[row.StemType]
	if !known {
		entry.Headword = row.Stem
		entry.LowConfidence = true
		return entry, nil
	}

	result, err := greek.Reconstruct(greek.Input{
		Stem:           row.Stem,
		Type:           stemType,
		POS:            pos,
		Stems:          tenseStems(row.TenseStems),
		Gender:         entry.Gender,
		PassiveOnly:    hasFlag(row.Flags, "deponent") || hasFlag(row.Flags, "passive"),
		PerfectPassive: hasFlag(row.Flags, "semideponent"),
		ActiveMeaning:  hasFlag(row.Flags, "deponent"),
		PluraliaTantum: entry.PluraliaTantum,
	})
	if err != nil {
		var rerr *lexicon.ReconstructionError
		if !errors.As(err, &rerr) {
			return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "reconstruction failed", Err: err}
		}
		entry.Headword = row.Stem
		entry.LowConfidence = true
		return entry, nil
	}

	entry.Headword = result.Headword
	entry.Voice = result.Voice
	entry.Inflection = result.Inflection
	entry.GreekParts = result.Parts
	if entry.Gender == "" {
		entry.Gender = result.Gender
	}
	return entry, nil
}

// tenseStems maps the CSV's positional stem list onto the six-stem set;
// unattested trailing stems stay empty.
func tenseStems(stems []string) greek.TenseStems {
	at := func(i int) string {
		if i < len(stems) {
			return stems[i]
		}
		return ""
	}
	return greek.TenseStems{
		Present:       at(0),
		Future:        at(1),
		Aorist:        at(2),
		PerfectActive: at(3),
		PerfectMiddle: at(4),
		AoristPassive: at(5),
	}
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}
