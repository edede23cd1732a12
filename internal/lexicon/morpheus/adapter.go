package morpheus

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/autocom/glossa/internal/lexicon"
	"github.com/autocom/glossa/internal/sense"
)

// The service wraps analyses in an RDF annotation envelope. Singleton
// elements arrive as objects and repeated ones as arrays, so the repeatable
// levels decode through oneOrMany.
type payload struct {
	RDF struct {
		Annotation struct {
			Body oneOrMany[body] `json:"Body"`
		} `json:"Annotation"`
	} `json:"RDF"`
}

type body struct {
	Rest struct {
		Entry struct {
			Dict oneOrMany[dict] `json:"dict"`
			Mean oneOrMany[text] `json:"mean"`
		} `json:"entry"`
	} `json:"rest"`
}

type dict struct {
	Hdwd text `json:"hdwd"`
	Pofs text `json:"pofs"`
	Gend text `json:"gend"`
}

// text is the service's {"$": "value"} leaf shape.
type text struct {
	Value string `json:"$"`
}

type oneOrMany[T any] []T

func (o *oneOrMany[T]) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, (*[]T)(o))
	}
	var single T
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*o = []T{single}
	return nil
}

// Adapter normalizes Morpheus analysis payloads. The service returns full
// citation headwords, so no reconstruction runs; homograph headwords carry
// a disambiguating trailing digit that is stripped here.
type Adapter struct{}

func (Adapter) Normalize(raw []byte, req lexicon.Request) (*lexicon.Entry, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "malformed payload", Err: err}
	}
	bodies := p.RDF.Annotation.Body
	if len(bodies) == 0 {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "payload has no analyses"}
	}

	chosen, d := pickBody(bodies, req.POSHint)
	headword := strings.TrimRightFunc(d.Hdwd.Value, unicode.IsDigit)
	if headword == "" {
		return nil, &lexicon.NormalizationError{Source: SourceName, Reason: "analysis has no headword"}
	}

	var meanings []string
	for _, m := range chosen.Rest.Entry.Mean {
		meanings = append(meanings, m.Value)
	}

	return &lexicon.Entry{
		Headword:     headword,
		Lemma:        req.Lemma,
		PartOfSpeech: partOfSpeech(d.Pofs.Value),
		Gender:       genderCodes[d.Gend.Value],
		Senses:       sense.Clean(strings.Join(meanings, "; ")),
		Source:       SourceName,
	}, nil
}

// pickBody prefers the first analysis whose part of speech matches the
// hint; otherwise the service's own ordering decides.
func pickBody(bodies []body, hint lexicon.PartOfSpeech) (body, dict) {
	if hint != "" && hint != lexicon.UnknownPOS {
		for _, b := range bodies {
			for _, d := range b.Rest.Entry.Dict {
				if partOfSpeech(d.Pofs.Value) == hint {
					return b, d
				}
			}
		}
	}
	first := bodies[0]
	if len(first.Rest.Entry.Dict) == 0 {
		return first, dict{}
	}
	return first, first.Rest.Entry.Dict[0]
}
