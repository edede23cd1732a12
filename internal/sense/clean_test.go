package sense

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "semicolon separated senses",
			raw:  "kill, murder; cut down; fall",
			want: []string{"kill, murder", "cut down", "fall"},
		},
		{
			name: "numbered senses",
			raw:  "1. to love 2. to like",
			want: []string{"to love", "to like"},
		},
		{
			name: "roman numeral senses",
			raw:  "I. a word II. speech, account",
			want: []string{"a word", "speech, account"},
		},
		{
			name: "bracketed annotations are stripped",
			raw:  "be absent [w/ABL]; be away <rare>",
			want: []string{"be absent", "be away"},
		},
		{
			name: "parenthesized usage notes are kept",
			raw:  "carry (a burden); endure",
			want: []string{"carry (a burden)", "endure"},
		},
		{
			name: "adjacent duplicates collapse",
			raw:  "say; say; tell",
			want: []string{"say", "tell"},
		},
		{
			name: "whitespace collapses",
			raw:  "to  be   able ;  can",
			want: []string{"to be able", "can"},
		},
		{
			name: "all annotation input yields nothing",
			raw:  "[obsolete]",
			want: nil,
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.raw))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	raw := "1. kill [w/ACC]; 2. murder;  slay"
	first := Clean(raw)
	second := Clean(strings.Join(first, "; "))
	assert.Equal(t, first, second)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		senses []string
		max    int
		want   []string
	}{
		{
			name:   "under the cap",
			senses: []string{"a", "b"},
			max:    3,
			want:   []string{"a", "b"},
		},
		{
			name:   "over the cap",
			senses: []string{"a", "b", "c", "d"},
			max:    3,
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "zero keeps everything",
			senses: []string{"a", "b", "c", "d"},
			max:    0,
			want:   []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.senses, tt.max))
		})
	}
}
