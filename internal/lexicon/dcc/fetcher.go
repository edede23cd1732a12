// Package dcc adapts the Greek core vocabulary list: a static CSV of raw
// stems, tense-stem sets and classification columns, shipped with the data
// files and indexed by normalized lemma.
package dcc

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/autocom/glossa/internal/lexicon"
)

// SourceName is the identifier this source registers under.
const SourceName = "dcc"

// Row is one core-list record. TenseStems holds the six verb stems in
// citation order, "|"-separated in the CSV; Flags carries morphology
// markers like "deponent".
type Row struct {
	Lemma      string   `json:"lemma"`
	Stem       string   `json:"stem"`
	StemType   string   `json:"stem_type"`
	POS        string   `json:"pos"`
	Gender     string   `json:"gender"`
	TenseStems []string `json:"tense_stems"`
	Flags      []string `json:"flags"`
	Senses     string   `json:"senses"`
}

const rowColumns = 8

// Fetcher reads the core list from a local CSV file. The file loads lazily
// on first use and stays resident, indexed by normalized lemma.
type Fetcher struct {
	path string

	mu   sync.Mutex
	rows map[string]Row
}

// NewFetcher returns a fetcher over the core-list CSV at path.
func NewFetcher(path string) *Fetcher {
	return &Fetcher{path: path}
}

// Fetch returns the raw record for lemma, or ErrNotFound when the core
// list has no entry for it.
func (f *Fetcher) Fetch(_ context.Context, lemma string) ([]byte, error) {
	rows, err := f.load()
	if err != nil {
		return nil, err
	}
	row, ok := rows[lexicon.NormalizeKey(lemma, lexicon.LanguageGreek)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", lemma, lexicon.ErrNotFound)
	}
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encode core-list record: %w", err)
	}
	return raw, nil
}

func (f *Fetcher) load() (map[string]Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rows != nil {
		return f.rows, nil
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open core list: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = rowColumns

	// Header row.
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("read core-list header: %w", err)
	}

	rows := make(map[string]Row)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read core-list record: %w", err)
		}
		row := Row{
			Lemma:      record[0],
			Stem:       record[1],
			StemType:   record[2],
			POS:        record[3],
			Gender:     record[4],
			TenseStems: splitList(record[5]),
			Flags:      splitList(record[6]),
			Senses:     record[7],
		}
		rows[lexicon.NormalizeKey(row.Lemma, lexicon.LanguageGreek)] = row
	}
	f.rows = rows
	return rows, nil
}

func splitList(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, "|")
}
