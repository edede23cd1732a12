package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/autocom/glossa/internal/cache"
	"github.com/autocom/glossa/internal/config"
	"github.com/autocom/glossa/internal/lexicon"
	"github.com/autocom/glossa/internal/lexicon/dcc"
	"github.com/autocom/glossa/internal/lexicon/morpheus"
	"github.com/autocom/glossa/internal/lexicon/perseus"
	"github.com/autocom/glossa/internal/lexicon/whitakers"
)

type language lexicon.Language

func (l *language) Set(val string) error {
	switch lexicon.Language(val) {
	case lexicon.LanguageLatin, lexicon.LanguageGreek:
		*l = language(val)
		return nil
	}
	return fmt.Errorf("invalid language: %s", val)
}

func (l language) String() string {
	return string(l)
}

func (l *language) Type() string {
	return "language"
}

var _ pflag.Value = (*language)(nil)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// buildFacade wires the configured source chains, their adapters and the
// persistent cache into a lookup façade. The caller closes the returned
// store.
func buildFacade(cfg *config.Config) (*lexicon.Facade, *cache.Store, error) {
	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dictionary cache: %w", err)
	}

	registry := lexicon.NewRegistry()
	registry.Register(whitakers.SourceName, whitakers.Adapter{})
	registry.Register(morpheus.SourceName, morpheus.Adapter{})
	registry.Register(dcc.SourceName, dcc.Adapter{})
	registry.Register(perseus.SourceName, perseus.Adapter{})

	latinSources := []lexicon.Source{
		{
			Name:    whitakers.SourceName,
			Policy:  cache.Permanent(),
			Fetcher: whitakers.NewFetcher(cfg.Sources.Whitakers.DataDirectory),
		},
		{
			Name:   morpheus.SourceName,
			Policy: cache.WithTTL(time.Duration(cfg.Sources.Morpheus.TTLDays) * 24 * time.Hour),
			Fetcher: morpheus.NewClient(
				cfg.Sources.Morpheus.Host,
				lexicon.LanguageLatin,
				time.Duration(cfg.Sources.Morpheus.TimeoutSeconds)*time.Second,
				cfg.Sources.Morpheus.RetryAttempts,
			),
		},
	}

	var greekSources []lexicon.Source
	if cfg.Sources.DCC.CoreList != "" {
		greekSources = append(greekSources, lexicon.Source{
			Name:    dcc.SourceName,
			Policy:  cache.Permanent(),
			Fetcher: dcc.NewFetcher(cfg.Sources.DCC.CoreList),
		})
	}
	greekSources = append(greekSources, lexicon.Source{
		Name:   perseus.SourceName,
		Policy: cache.WithTTL(time.Duration(cfg.Sources.Perseus.TTLDays) * 24 * time.Hour),
		Fetcher: perseus.NewClient(
			cfg.Sources.Perseus.Host,
			time.Duration(cfg.Sources.Perseus.TimeoutSeconds)*time.Second,
			cfg.Sources.Perseus.RetryAttempts,
		),
	})

	facade := lexicon.NewFacade(store, registry, map[lexicon.Language][]lexicon.Source{
		lexicon.LanguageLatin: latinSources,
		lexicon.LanguageGreek: greekSources,
	}, lexicon.WithMaxSenses(cfg.Lookup.MaxSenses))
	return facade, store, nil
}
