// Package whitakers adapts Whitaker's Words dictionary data: a static,
// version-pinned Latin lexicon shipped as per-letter JSON files of raw
// stems, classification codes and sense strings.
package whitakers

import (
	"encoding/json"
	"errors"

	"github.com/autocom/glossa/internal/lexicon"
	"github.com/autocom/glossa/internal/lexicon/latin"
	"github.com/autocom/glossa/internal/sense"
)

// SourceName is the identifier this source registers under.
const SourceName = "whitakers"

// Payload is the raw per-lemma record: one analysis per homograph.
type Payload struct {
	Analyses []Analysis `json:"analyses"`
}

// Analysis is one homograph's raw material. Verb stem slots follow the
// DICTLINE layout: present, alternate present, perfect, supine.
type Analysis struct {
	Stems  []string `json:"stems"`
	Code   string   `json:"code"`
	Flags  []string `json:"flags"`
	Senses string   `json:"senses"`
}

// Adapter normalizes Whitaker payloads into canonical entries.
type Adapter struct{}

// Normalize decodes a raw payload, selects the analysis (POS hint breaks
// homograph ties, otherwise the first wins) and reconstructs its citation
// form. A failed reconstruction keeps the raw stem as the headword and
// marks the entry low-confidence instead of failing the lookup.
func (Adapter) Normalize(raw []byte, req lexicon.Request) (*lexicon.Entry, error) {
	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "malformed payload", Err: err}
	}
	if len(payload.Analyses) == 0 {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "payload has no analyses"}
	}

	analysis, info := pickAnalysis(payload.Analyses, req.POSHint)
	if len(analysis.Stems) == 0 || analysis.Stems[0] == "" {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "analysis has no stem"}
	}
	stem := analysis.Stems[0]

	entry := &lexicon.Entry{
		Lemma:          req.Lemma,
		PartOfSpeech:   info.POS,
		Gender:         info.Gender,
		PluraliaTantum: hasFlag(analysis.Flags, "PLURALIA"),
		Senses:         sense.Clean(analysis.Senses),
		Source:         SourceName,
	}

	stemType, known := latin.StemTypeFor(info.POS, info.Classification, info.Variant)
	if !known {
		entry.Headword = stem
		entry.LowConfidence = true
		return entry, nil
	}

	result, err := latin.Reconstruct(latin.Input{
		Stem: stem,
		Type: stemType,
		POS:  info.POS,
		Stems: latin.Stems{
			Present: stem,
			Perfect: stemAt(analysis.Stems, 2),
			Supine:  stemAt(analysis.Stems, 3),
		},
		Gender:         info.Gender,
		PassiveOnly:    hasFlag(analysis.Flags, "DEP") || hasFlag(analysis.Flags, "PASSIVE"),
		PerfectPassive: hasFlag(analysis.Flags, "SEMIDEP"),
		ActiveMeaning:  hasFlag(analysis.Flags, "DEP"),
		PluraliaTantum: entry.PluraliaTantum,
	})
	if err != nil {
		var rerr *lexicon.ReconstructionError
		if !errors.As(err, &rerr) {
			return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "reconstruction failed", Err: err}
		}
		entry.Headword = stem
		entry.LowConfidence = true
		return entry, nil
	}

	entry.Headword = result.Headword
	entry.Voice = result.Voice
	entry.Inflection = result.Inflection
	entry.LatinParts = result.Parts
	if entry.Gender == "" {
		entry.Gender = result.Gender
	}
	return entry, nil
}

// pickAnalysis prefers the first analysis matching the POS hint; without a
// hint, or when nothing matches, the file order decides.
func pickAnalysis(analyses []Analysis, hint lexicon.PartOfSpeech) (Analysis, codeInfo) {
	if hint != "" && hint != lexicon.UnknownPOS {
		for _, a := range analyses {
			if info := parseCode(a.Code); info.POS == hint {
				return a, info
			}
		}
	}
	return analyses[0], parseCode(analyses[0].Code)
}

func stemAt(stems []string, i int) string {
	if i < len(stems) {
		return stems[i]
	}
	return ""
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}
