package service

import (
	"context"
)

// FeedCategory is one category declared by a supplier price feed.
type FeedCategory struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// FeedGood is one listing declared by a supplier price feed. Prices come
// in as floats and are converted to decimals during import.
type FeedGood struct {
	ID         int64             `yaml:"id"`
	Category   int64             `yaml:"category"`
	Model      string            `yaml:"model"`
	Name       string            `yaml:"name"`
	Price      float64           `yaml:"price"`
	PriceRRC   float64           `yaml:"price_rrc"`
	Quantity   int               `yaml:"quantity"`
	Parameters map[string]string `yaml:"parameters"`
}

// PriceFeed is the parsed YAML document a shop exposes at its feed URL.
type PriceFeed struct {
	Shop       string         `yaml:"shop"`
	Categories []FeedCategory `yaml:"categories"`
	Goods      []FeedGood     `yaml:"goods"`
}

// FeedFetcher downloads and parses a price feed. Transport failures and
// malformed documents surface as distinct errors so callers can decide
// what is retryable.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (*PriceFeed, error)
}
