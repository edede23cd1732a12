// Package config loads the tool configuration: cache location, dictionary
// source endpoints and data files, and lookup behavior.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Cache   CacheConfig   `mapstructure:"cache"`
	Sources SourcesConfig `mapstructure:"sources"`
	Lookup  LookupConfig  `mapstructure:"lookup"`
}

type CacheConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type SourcesConfig struct {
	Whitakers WhitakersConfig `mapstructure:"whitakers"`
	Morpheus  MorpheusConfig  `mapstructure:"morpheus"`
	DCC       DCCConfig       `mapstructure:"dcc"`
	Perseus   PerseusConfig   `mapstructure:"perseus"`
}

type WhitakersConfig struct {
	DataDirectory string `mapstructure:"data_directory" validate:"required"`
}

type MorpheusConfig struct {
	Host           string `mapstructure:"host" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1"`
	RetryAttempts  uint   `mapstructure:"retry_attempts"`
	TTLDays        int    `mapstructure:"ttl_days" validate:"gte=1"`
}

type DCCConfig struct {
	// CoreList is the Greek core vocabulary CSV. Empty leaves the static
	// Greek source out of the chain.
	CoreList string `mapstructure:"core_list" validate:"omitempty,file"`
}

type PerseusConfig struct {
	Host           string `mapstructure:"host" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1"`
	RetryAttempts  uint   `mapstructure:"retry_attempts"`
	TTLDays        int    `mapstructure:"ttl_days" validate:"gte=1"`
}

type LookupConfig struct {
	// MaxSenses caps how many cleaned senses each entry keeps; zero keeps
	// them all.
	MaxSenses int `mapstructure:"max_senses" validate:"gte=0"`
	Workers   int `mapstructure:"workers" validate:"gte=1"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/glossa")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("cache.path", filepath.Join(".glossa", "dictionary_cache.db"))
	v.SetDefault("sources.whitakers.data_directory", filepath.Join("data", "whitakers"))
	v.SetDefault("sources.morpheus.host", "https://morph.perseids.org")
	v.SetDefault("sources.morpheus.timeout_seconds", 10)
	v.SetDefault("sources.morpheus.retry_attempts", 2)
	v.SetDefault("sources.morpheus.ttl_days", 30)
	// Core list is optional - without it the Greek chain uses the network
	// source alone
	v.SetDefault("sources.dcc.core_list", "")
	v.SetDefault("sources.perseus.host", "https://www.perseus.tufts.edu")
	v.SetDefault("sources.perseus.timeout_seconds", 10)
	v.SetDefault("sources.perseus.retry_attempts", 2)
	v.SetDefault("sources.perseus.ttl_days", 30)
	v.SetDefault("lookup.max_senses", 3)
	v.SetDefault("lookup.workers", 4)

	if err := v.BindEnv("cache.path", "GLOSSA_CACHE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind GLOSSA_CACHE_PATH environment variable: %w", err)
	}
	if err := v.BindEnv("sources.morpheus.host", "GLOSSA_MORPHEUS_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind GLOSSA_MORPHEUS_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("sources.perseus.host", "GLOSSA_PERSEUS_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind GLOSSA_PERSEUS_HOST environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
