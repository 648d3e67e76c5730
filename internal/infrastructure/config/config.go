package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Store   StoreConfig
	Catalog CatalogConfig

	// PageSize is the default page length for catalog listings.
	PageSize int `env:"SULA_PAGE_SIZE, default=6"`
}

type StoreConfig struct {
	// Path of the SQLite database file backing the key-value store.
	Path string `env:"SULA_DB, default=sula.db"`
}

type CatalogConfig struct {
	// Path of the YAML service catalog supplied by the hosting application.
	Path string `env:"SULA_CATALOG, default=catalog.yaml"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
