package whitakers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode"

	"github.com/autocom/glossa/internal/lexicon"
)

// Fetcher reads the per-letter dictionary files from a local data
// directory. Each file ("a.json" through "z.json") maps normalized lookup
// keys to raw payloads; letters load lazily on first use and stay resident
// for the life of the process.
type Fetcher struct {
	dir string

	mu      sync.Mutex
	letters map[string]map[string]json.RawMessage
}

// NewFetcher returns a fetcher over the dictionary files under dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{
		dir:     dir,
		letters: make(map[string]map[string]json.RawMessage),
	}
}

// Fetch returns the raw payload for lemma, or ErrNotFound when the
// dictionary has no entry for it.
func (f *Fetcher) Fetch(_ context.Context, lemma string) ([]byte, error) {
	key := lexicon.NormalizeKey(lemma, lexicon.LanguageLatin)
	if key == "" {
		return nil, fmt.Errorf("%q: %w", lemma, lexicon.ErrNotFound)
	}
	first := []rune(key)[0]
	if !unicode.IsLetter(first) {
		return nil, fmt.Errorf("%q: %w", lemma, lexicon.ErrNotFound)
	}

	entries, err := f.letter(string(first))
	if err != nil {
		return nil, err
	}
	raw, ok := entries[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", lemma, lexicon.ErrNotFound)
	}
	return raw, nil
}

// letter loads and caches one per-letter file. A missing file is an empty
// letter, not an error, so partial data sets degrade to misses.
func (f *Fetcher) letter(l string) (map[string]json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if entries, ok := f.letters[l]; ok {
		return entries, nil
	}

	data, err := os.ReadFile(filepath.Join(f.dir, l+".json"))
	if os.IsNotExist(err) {
		f.letters[l] = map[string]json.RawMessage{}
		return f.letters[l], nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dictionary file for %q: %w", l, err)
	}

	entries := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode dictionary file for %q: %w", l, err)
	}
	f.letters[l] = entries
	return entries, nil
}
