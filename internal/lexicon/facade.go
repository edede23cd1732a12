package lexicon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/autocom/glossa/internal/cache"
	"github.com/autocom/glossa/internal/sense"
)

//go:generate mockgen -source=facade.go -destination=../mocks/lexicon/mock_fetcher.go -package=mock_lexicon

// Fetcher supplies the raw payload for a lemma from one dictionary source.
// A source with no entry for the lemma returns ErrNotFound; network-backed
// fetchers apply their own timeout and retry policy before reporting
// failure.
type Fetcher interface {
	Fetch(ctx context.Context, lemma string) ([]byte, error)
}

// Source is one dictionary source in a language's priority chain.
type Source struct {
	Name    string
	Policy  cache.Policy
	Fetcher Fetcher
}

// Facade orchestrates cache lookups, source fallback ordering and
// normalization. It is the single entry point the enrichment stage consumes,
// and it recovers every source-level failure: the only user-visible effect
// of exhausting all sources is an entry in the missing-words report.
type Facade struct {
	store    *cache.Store
	registry *Registry
	sources  map[Language][]Source

	maxSenses int
	log       *slog.Logger

	mu      sync.Mutex
	missing map[string]struct{}
}

// FacadeOption configures a Facade.
type FacadeOption func(*Facade)

// WithMaxSenses caps how many cleaned senses an entry keeps. Zero disables
// the cap.
func WithMaxSenses(n int) FacadeOption {
	return func(f *Facade) { f.maxSenses = n }
}

// WithFacadeLogger substitutes the façade's logger.
func WithFacadeLogger(log *slog.Logger) FacadeOption {
	return func(f *Facade) { f.log = log }
}

// NewFacade builds a façade over an explicit cache handle and per-language
// ordered source chains. The cache handle is injected rather than global so
// tests can substitute a throwaway store.
func NewFacade(store *cache.Store, registry *Registry, sources map[Language][]Source, opts ...FacadeOption) *Facade {
	f := &Facade{
		store:     store,
		registry:  registry,
		sources:   sources,
		maxSenses: 3,
		log:       slog.Default(),
		missing:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Lookup resolves a lemma to its normalized entry. Cached records are
// consulted for every source in priority order first; on a full cache miss
// the sources are fetched in the same order and the first one that yields
// usable senses wins (senses are never merged across sources). When every
// source misses, the lemma is recorded for the missing-words report and
// ErrLookupMiss is returned.
func (f *Facade) Lookup(ctx context.Context, req Request) (*Entry, error) {
	sources, ok := f.sources[req.Language]
	if !ok || len(sources) == 0 {
		return nil, fmt.Errorf("no sources configured for language %q", req.Language)
	}
	key := NormalizeKey(req.Lemma, req.Language)

	for _, src := range sources {
		rec, ok, err := f.store.Get(ctx, key, src.Name)
		if err != nil {
			return nil, fmt.Errorf("cache lookup for %q: %w", req.Lemma, err)
		}
		if !ok {
			continue
		}
		entry, err := decodeEntry(rec.Payload)
		if err != nil {
			// Corrupt payload: evict it so the fetch pass below can
			// replace it, and treat the source as a miss.
			f.log.WarnContext(ctx, "corrupt cache payload",
				"key", key, "source", src.Name, "error", err)
			if err := f.store.Delete(ctx, key, src.Name); err != nil {
				return nil, fmt.Errorf("evict corrupt cache record: %w", err)
			}
			continue
		}
		return entry, nil
	}

	for _, src := range sources {
		payload, err := f.store.GetOrFetch(ctx, key, src.Name, src.Policy, func(ctx context.Context) ([]byte, error) {
			return f.fetchAndNormalize(ctx, src, req)
		})
		if err != nil {
			if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrLookupMiss) {
				f.log.WarnContext(ctx, "source lookup failed",
					"lemma", req.Lemma, "source", src.Name, "error", err)
			}
			continue
		}
		entry, err := decodeEntry(payload)
		if err != nil {
			f.log.WarnContext(ctx, "corrupt cache payload",
				"key", key, "source", src.Name, "error", err)
			continue
		}
		return entry, nil
	}

	f.recordMissing(req.Lemma)
	return nil, ErrLookupMiss
}

// fetchAndNormalize runs one source's raw fetch and adapter, returning the
// serialized entry the cache stores. Zero usable senses is a miss, never a
// degenerate hit, so nothing is cached for it.
func (f *Facade) fetchAndNormalize(ctx context.Context, src Source, req Request) ([]byte, error) {
	raw, err := src.Fetcher.Fetch(ctx, req.Lemma)
	if err != nil {
		return nil, err
	}
	entry, err := f.registry.Normalize(src.Name, raw, req)
	if err != nil {
		return nil, err
	}
	entry.Senses = sense.Truncate(entry.Senses, f.maxSenses)
	if len(entry.Senses) == 0 {
		return nil, ErrLookupMiss
	}
	entry.Source = src.Name
	payload, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("encode entry: %w", err)
	}
	return payload, nil
}

// LookupAll resolves the given requests over a bounded worker pool and
// returns the found entries keyed by lemma. Misses are recorded per lemma,
// not returned as errors; lookups for distinct lemmas proceed
// independently.
func (f *Facade) LookupAll(ctx context.Context, reqs []Request, workers int) (map[string]*Entry, error) {
	if workers <= 0 {
		workers = 4
	}

	var (
		mu      sync.Mutex
		entries = make(map[string]*Entry, len(reqs))
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, req := range reqs {
		g.Go(func() error {
			entry, err := f.Lookup(ctx, req)
			if errors.Is(err, ErrLookupMiss) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			entries[req.Lemma] = entry
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// MissingWords returns the sorted lemmas for which every source missed:
// the "words without definitions" report.
func (f *Facade) MissingWords() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	words := make([]string, 0, len(f.missing))
	for w := range f.missing {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func (f *Facade) recordMissing(lemma string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.missing[lemma] = struct{}{}
}

// decodeEntry deserializes a cached payload, rejecting structurally empty
// entries so corruption surfaces as a miss rather than a blank gloss.
func decodeEntry(payload []byte) (*Entry, error) {
	var entry Entry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, fmt.Errorf("decode entry: %w", err)
	}
	if entry.Headword == "" || len(entry.Senses) == 0 {
		return nil, errors.New("decode entry: missing headword or senses")
	}
	return &entry, nil
}
