package latin

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/autocom/glossa/internal/lexicon"
)

//go:embed overrides.yaml
var overridesYAML []byte

// override is one attested-irregular citation form that bypasses the general
// pattern rules. The table is a flat exact-match lookup, checked before any
// pattern is consulted.
type override struct {
	Stem       string   `yaml:"stem"`
	POS        string   `yaml:"pos"`
	Headword   string   `yaml:"headword"`
	Parts      []string `yaml:"parts"`
	Voice      string   `yaml:"voice"`
	Inflection string   `yaml:"inflection"`
	Gender     string   `yaml:"gender"`
}

func (o override) result() Result {
	r := Result{
		Headword:   o.Headword,
		Inflection: o.Inflection,
		Gender:     lexicon.Gender(o.Gender),
	}
	if len(o.Parts) == 4 {
		r.Parts = &lexicon.LatinPrincipalParts{
			Present:    o.Parts[0],
			Infinitive: o.Parts[1],
			Perfect:    o.Parts[2],
			Supine:     o.Parts[3],
		}
	}
	if o.Voice != "" {
		r.Voice = lexicon.Voice(o.Voice)
	} else if r.Parts != nil {
		r.Voice = lexicon.Active
	}
	return r
}

var overrides = mustLoadOverrides()

func mustLoadOverrides() map[string]override {
	var list []override
	if err := yaml.Unmarshal(overridesYAML, &list); err != nil {
		panic(fmt.Errorf("parse embedded latin overrides: %w", err))
	}
	table := make(map[string]override, len(list))
	for _, o := range list {
		table[o.Stem+"|"+o.POS] = o
	}
	return table
}

func lookupOverride(stem string, pos lexicon.PartOfSpeech) (override, bool) {
	o, ok := overrides[stem+"|"+string(pos)]
	return o, ok
}
