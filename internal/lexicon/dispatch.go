package lexicon

// Normalizer turns one raw source payload into a canonical entry. Each
// dictionary source registers exactly one implementation; adding a source
// means adding an adapter, not touching the model or the cache.
type Normalizer interface {
	Normalize(raw []byte, req Request) (*Entry, error)
}

// Registry dispatches raw payloads to the adapter registered for their
// source identifier.
type Registry struct {
	adapters map[string]Normalizer
}

// NewRegistry returns an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Normalizer)}
}

// Register binds source to n, replacing any earlier binding.
func (r *Registry) Register(source string, n Normalizer) {
	r.adapters[source] = n
}

// Normalize dispatches raw to the adapter registered for source. An
// unregistered source is a NormalizationError, like any other structurally
// unusable payload.
func (r *Registry) Normalize(source string, raw []byte, req Request) (*Entry, error) {
	n, ok := r.adapters[source]
	if !ok {
		return nil, &NormalizationError{Source: source, Reason: "no adapter registered"}
	}
	return n.Normalize(raw, req)
}
