package config

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/caarlos0/env/v11"

	"blockpuzzle/game"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Rows        int    `env:"BLOCKS_ROWS" envDefault:"10"`
	Cols        int    `env:"BLOCKS_COLS" envDefault:"10"`
	CatalogFile string `env:"BLOCKS_CATALOG"`
	Seed        uint64 `env:"BLOCKS_SEED"` // 0 picks a time-based seed
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return Config{}, fmt.Errorf("grid size %dx%d must be positive", cfg.Rows, cfg.Cols)
	}
	return cfg, nil
}

// Catalog returns the configured piece catalog: the YAML file when one is
// set, the built-in templates otherwise.
func (c Config) Catalog() (*game.Catalog, error) {
	if c.CatalogFile == "" {
		return game.DefaultCatalog(), nil
	}
	return LoadCatalog(c.CatalogFile, c.Rows, c.Cols)
}

// Source returns a random source for one session. A fixed Seed gives every
// session the same piece sequence.
func (c Config) Source() rand.Source {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Options builds session options for the configured game.
func (c Config) Options(catalog *game.Catalog) game.Options {
	return game.Options{
		Rows:    c.Rows,
		Cols:    c.Cols,
		Catalog: catalog,
		Source:  c.Source(),
	}
}
