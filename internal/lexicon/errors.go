package lexicon

import (
	"errors"
	"fmt"
)

// ErrNotFound is the explicit "not found" signal a raw source returns when it
// has no payload for a lemma.
var ErrNotFound = errors.New("entry not found")

// ErrLookupMiss reports that no source produced usable senses for a lemma.
// The façade records the lemma in the missing-words report; the error is
// never fatal to a run.
var ErrLookupMiss = errors.New("no definition found")

// NormalizationError reports a raw payload that is structurally unparseable
// for its adapter. The façade treats the source as a miss and continues down
// the fallback chain.
type NormalizationError struct {
	Source string
	Reason string
	Err    error
}

func (e *NormalizationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("normalize %s payload: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("normalize %s payload: %s", e.Source, e.Reason)
}

func (e *NormalizationError) Unwrap() error { return e.Err }

// ReconstructionError reports a stem/classification combination with no
// pattern-table entry and no override. Callers fall back to the raw stem as
// a best-effort headword and mark the entry low-confidence.
type ReconstructionError struct {
	StemType string
	POS      PartOfSpeech
}

func (e *ReconstructionError) Error() string {
	return fmt.Sprintf("no reconstruction rule for stem type %q as %s", e.StemType, e.POS)
}
