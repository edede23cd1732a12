package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatinPrincipalParts_String(t *testing.T) {
	tests := []struct {
		name  string
		parts LatinPrincipalParts
		want  string
	}{
		{
			name:  "all four parts",
			parts: LatinPrincipalParts{Present: "amo", Infinitive: "amare", Perfect: "amavi", Supine: "amatum"},
			want:  "amo, amare, amavi, amatum",
		},
		{
			name:  "defective verb skips missing parts",
			parts: LatinPrincipalParts{Present: "possum", Infinitive: "posse", Perfect: "potui"},
			want:  "possum, posse, potui",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.parts.String())
		})
	}
}

func TestEntry_Gloss(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  GlossRecord
	}{
		{
			name: "noun",
			entry: Entry{
				Headword:     "puella",
				PartOfSpeech: Noun,
				Gender:       Feminine,
				Inflection:   "-ae",
				Senses:       []string{"girl"},
			},
			want: GlossRecord{
				Headword:     "puella",
				Inflection:   "-ae",
				GenderAbbrev: "f.",
				POSAbbrev:    "n.",
				Senses:       []string{"girl"},
			},
		},
		{
			name: "verb carries principal parts",
			entry: Entry{
				Headword:     "lego",
				PartOfSpeech: Verb,
				LatinParts:   &LatinPrincipalParts{Present: "lego", Infinitive: "legere", Perfect: "legi", Supine: "lectum"},
				Senses:       []string{"read", "choose"},
			},
			want: GlossRecord{
				Headword:       "lego",
				POSAbbrev:      "v.",
				PrincipalParts: []string{"lego", "legere", "legi", "lectum"},
				Senses:         []string{"read", "choose"},
			},
		},
		{
			name: "unknown part of speech has no abbreviation",
			entry: Entry{
				Headword:     "ecce",
				PartOfSpeech: UnknownPOS,
				Senses:       []string{"behold!"},
			},
			want: GlossRecord{
				Headword: "ecce",
				Senses:   []string{"behold!"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Gloss())
		})
	}
}
