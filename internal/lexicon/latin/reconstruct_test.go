package latin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocom/glossa/internal/lexicon"
)

func TestStemTypeFor(t *testing.T) {
	tests := []struct {
		name           string
		pos            lexicon.PartOfSpeech
		classification int
		variant        int
		want           StemType
		wantKnown      bool
	}{
		{name: "first conjugation", pos: lexicon.Verb, classification: 1, variant: 1, want: Conj1, wantKnown: true},
		{name: "third conjugation", pos: lexicon.Verb, classification: 3, variant: 1, want: Conj3, wantKnown: true},
		{name: "third conjugation io variant", pos: lexicon.Verb, classification: 3, variant: 4, want: Conj3IO, wantKnown: true},
		{name: "second declension neuter variant", pos: lexicon.Noun, classification: 2, variant: 2, want: Decl2N, wantKnown: true},
		{name: "fifth declension", pos: lexicon.Noun, classification: 5, variant: 1, want: Decl5, wantKnown: true},
		{name: "indeclinable adjective", pos: lexicon.Adjective, classification: 9, variant: 0, want: Indecl, wantKnown: true},
		{name: "adverb is uninflected", pos: lexicon.Adverb, classification: 0, variant: 0, want: Indecl, wantKnown: true},
		{name: "unknown conjugation", pos: lexicon.Verb, classification: 7, variant: 0, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := StemTypeFor(tt.pos, tt.classification, tt.variant)
			assert.Equal(t, tt.wantKnown, known)
			if tt.wantKnown {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReconstruct_Verbs(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantParts lexicon.LatinPrincipalParts
		wantVoice lexicon.Voice
	}{
		{
			name: "first conjugation active",
			input: Input{
				Stem: "am",
				Type: Conj1,
				POS:  lexicon.Verb,
				Stems: Stems{
					Present: "am",
					Perfect: "amav",
					Supine:  "amat",
				},
			},
			wantParts: lexicon.LatinPrincipalParts{Present: "amo", Infinitive: "amare", Perfect: "amavi", Supine: "amatum"},
			wantVoice: lexicon.Active,
		},
		{
			name: "third conjugation active",
			input: Input{
				Stem: "leg",
				Type: Conj3,
				POS:  lexicon.Verb,
				Stems: Stems{
					Present: "leg",
					Perfect: "leg",
					Supine:  "lect",
				},
			},
			wantParts: lexicon.LatinPrincipalParts{Present: "lego", Infinitive: "legere", Perfect: "legi", Supine: "lectum"},
			wantVoice: lexicon.Active,
		},
		{
			name: "third conjugation io variant",
			input: Input{
				Stem: "cap",
				Type: Conj3IO,
				POS:  lexicon.Verb,
				Stems: Stems{
					Present: "cap",
					Perfect: "cep",
					Supine:  "capt",
				},
			},
			wantParts: lexicon.LatinPrincipalParts{Present: "capio", Infinitive: "capere", Perfect: "cepi", Supine: "captum"},
			wantVoice: lexicon.Active,
		},
		{
			name: "fourth conjugation active",
			input: Input{
				Stem: "aud",
				Type: Conj4,
				POS:  lexicon.Verb,
				Stems: Stems{
					Present: "aud",
					Perfect: "audiv",
					Supine:  "audit",
				},
			},
			wantParts: lexicon.LatinPrincipalParts{Present: "audio", Infinitive: "audire", Perfect: "audivi", Supine: "auditum"},
			wantVoice: lexicon.Active,
		},
		{
			name: "first conjugation deponent",
			input: Input{
				Stem: "hort",
				Type: Conj1,
				POS:  lexicon.Verb,
				Stems: Stems{
					Present: "hort",
					Supine:  "hortat",
				},
				PassiveOnly:   true,
				ActiveMeaning: true,
			},
			wantParts: lexicon.LatinPrincipalParts{Present: "hortor", Infinitive: "hortari", Perfect: "hortatus sum"},
			wantVoice: lexicon.Deponent,
		},
		{
			name: "second conjugation semi-deponent",
			input: Input{
				Stem: "gaud",
				Type: Conj2,
				POS:  lexicon.Verb,
				Stems: Stems{
					Present: "gaud",
					Supine:  "gavis",
				},
				PerfectPassive: true,
			},
			wantParts: lexicon.LatinPrincipalParts{Present: "gaudeo", Infinitive: "gaudere", Perfect: "gavisus sum"},
			wantVoice: lexicon.SemiDeponent,
		},
		{
			name: "verb without perfect or supine keeps empty parts",
			input: Input{
				Stem: "curr",
				Type: Conj3,
				POS:  lexicon.Verb,
			},
			wantParts: lexicon.LatinPrincipalParts{Present: "curro", Infinitive: "currere"},
			wantVoice: lexicon.Active,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconstruct(tt.input)
			require.NoError(t, err)
			require.NotNil(t, got.Parts)
			assert.Equal(t, tt.wantParts, *got.Parts)
			assert.Equal(t, tt.wantParts.Present, got.Headword)
			assert.Equal(t, tt.wantVoice, got.Voice)
		})
	}
}

func TestReconstruct_NounsAndAdjectives(t *testing.T) {
	tests := []struct {
		name           string
		input          Input
		wantHeadword   string
		wantInflection string
		wantGender     lexicon.Gender
	}{
		{
			name:           "first declension",
			input:          Input{Stem: "puell", Type: Decl1, POS: lexicon.Noun},
			wantHeadword:   "puella",
			wantInflection: "-ae",
			wantGender:     lexicon.Feminine,
		},
		{
			name:           "second declension neuter",
			input:          Input{Stem: "bell", Type: Decl2N, POS: lexicon.Noun},
			wantHeadword:   "bellum",
			wantInflection: "-i",
			wantGender:     lexicon.Neuter,
		},
		{
			name:           "third declension keeps the citation stem",
			input:          Input{Stem: "rex", Type: Decl3, POS: lexicon.Noun, Gender: lexicon.Masculine},
			wantHeadword:   "rex",
			wantInflection: "-is",
			wantGender:     lexicon.Masculine,
		},
		{
			name:           "source gender wins over pattern gender",
			input:          Input{Stem: "agricol", Type: Decl1, POS: lexicon.Noun, Gender: lexicon.Masculine},
			wantHeadword:   "agricola",
			wantInflection: "-ae",
			wantGender:     lexicon.Masculine,
		},
		{
			name:           "proper noun keeps capitalization",
			input:          Input{Stem: "Rom", Type: Decl1, POS: lexicon.Noun},
			wantHeadword:   "Roma",
			wantInflection: "-ae",
			wantGender:     lexicon.Feminine,
		},
		{
			name:           "pluralia tantum cites the nominative plural",
			input:          Input{Stem: "arm", Type: Decl2N, POS: lexicon.Noun, PluraliaTantum: true},
			wantHeadword:   "arma",
			wantInflection: "-orum",
			wantGender:     lexicon.Neuter,
		},
		{
			name:           "first and second declension adjective",
			input:          Input{Stem: "magn", Type: Adj12, POS: lexicon.Adjective},
			wantHeadword:   "magnus",
			wantInflection: "-a, -um",
		},
		{
			name:           "third declension adjective",
			input:          Input{Stem: "fortis", Type: Adj3, POS: lexicon.Adjective},
			wantHeadword:   "fortis",
			wantInflection: "-is",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconstruct(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeadword, got.Headword)
			assert.Equal(t, tt.wantInflection, got.Inflection)
			assert.Equal(t, tt.wantGender, got.Gender)
		})
	}
}

func TestReconstruct_Overrides(t *testing.T) {
	tests := []struct {
		name         string
		input        Input
		wantHeadword string
		wantParts    *lexicon.LatinPrincipalParts
	}{
		{
			name:         "sum",
			input:        Input{Stem: "s", Type: Conj3, POS: lexicon.Verb},
			wantHeadword: "sum",
			wantParts:    &lexicon.LatinPrincipalParts{Present: "sum", Infinitive: "esse", Perfect: "fui", Supine: "futurus"},
		},
		{
			name:         "fero",
			input:        Input{Stem: "fer", Type: Conj3, POS: lexicon.Verb},
			wantHeadword: "fero",
			wantParts:    &lexicon.LatinPrincipalParts{Present: "fero", Infinitive: "ferre", Perfect: "tuli", Supine: "latum"},
		},
		{
			name:         "vis",
			input:        Input{Stem: "vi", Type: Decl3, POS: lexicon.Noun},
			wantHeadword: "vis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconstruct(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeadword, got.Headword)
			if tt.wantParts != nil {
				assert.Equal(t, tt.wantParts, got.Parts)
			}
		})
	}
}

func TestReconstruct_UnknownPattern(t *testing.T) {
	_, err := Reconstruct(Input{Stem: "xyz", Type: StemType("decl7"), POS: lexicon.Noun})
	var rerr *lexicon.ReconstructionError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "decl7", rerr.StemType)
	assert.Equal(t, lexicon.Noun, rerr.POS)
}
