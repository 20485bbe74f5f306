// Package feed downloads and parses supplier price feeds.
package feed

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-yaml"
	"go.uber.org/fx"
)

const (
	defaultFetchTimeout = 30 * time.Second
	defaultRetryCount   = 2
)

// restyFetcher implements the FeedFetcher interface over HTTP with retries.
type restyFetcher struct {
	client *resty.Client
	logger *slog.Logger
}

// FetcherParams holds dependencies for the feed fetcher, injected by Fx.
type FetcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewFetcher is the constructor for restyFetcher.
func NewFetcher(params FetcherParams) service.FeedFetcher {
	timeout := defaultFetchTimeout
	retries := defaultRetryCount
	if params.Config != nil && params.Config.Import != nil {
		if params.Config.Import.FetchTimeout > 0 {
			timeout = params.Config.Import.FetchTimeout
		}
		if params.Config.Import.RetryCount >= 0 {
			retries = params.Config.Import.RetryCount
		}
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second)

	return &restyFetcher{
		client: client,
		logger: params.Logger,
	}
}

// Fetch downloads the feed URL and parses the YAML document. Transport
// failures and non-2xx answers come back as upstream fetch errors, which
// the worker treats as retryable; malformed documents are permanent.
func (f *restyFetcher) Fetch(ctx context.Context, url string) (*service.PriceFeed, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFetch.WrapMessage(err.Error())
	}
	if resp.IsError() {
		return nil, domainerrors.ErrUpstreamFetch.WithDetails(resp.Status())
	}

	feed, err := parsePriceFeed(resp.Body())
	if err != nil {
		return nil, err
	}

	f.logger.Debug("Feed fetched",
		slog.String("url", url),
		slog.String("shop", feed.Shop),
		slog.Int("goods", len(feed.Goods)),
	)

	return feed, nil
}

// parsePriceFeed decodes the YAML body and checks the required keys.
func parsePriceFeed(body []byte) (*service.PriceFeed, error) {
	var doc struct {
		Shop       *string                 `yaml:"shop"`
		Categories *[]service.FeedCategory `yaml:"categories"`
		Goods      *[]service.FeedGood     `yaml:"goods"`
	}
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return nil, domainerrors.ErrFeedInvalid.WithDetails(err.Error())
	}

	if doc.Shop == nil || *doc.Shop == "" {
		return nil, domainerrors.ErrFeedInvalid.WithDetails("missing required key: shop")
	}
	if doc.Categories == nil {
		return nil, domainerrors.ErrFeedInvalid.WithDetails("missing required key: categories")
	}
	if doc.Goods == nil {
		return nil, domainerrors.ErrFeedInvalid.WithDetails("missing required key: goods")
	}

	return &service.PriceFeed{
		Shop:       *doc.Shop,
		Categories: *doc.Categories,
		Goods:      *doc.Goods,
	}, nil
}
