package fxrate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/service/cache"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	// DefaultTTL is how long a fetched rate stays fresh
	DefaultTTL = 30 * time.Minute

	fetchTimeout    = 8 * time.Second
	defaultEndpoint = "https://open.er-api.com/v6/latest"
	defaultBase     = "USD"
	defaultTarget   = "INR"

	// only one currency pair is ever tracked, so the cache has one slot
	slotKey = ""
)

// ErrRateUnavailable is returned when the live fetch fails and no cached
// rate exists to fall back on
var ErrRateUnavailable = errors.New("exchange rate unavailable")

func NewService(rates *cache.Cache[model.FxRate], logger zerolog.Logger, opts Options) *service {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	base := opts.Base
	if base == "" {
		base = defaultBase
	}
	target := opts.Target
	if target == "" {
		target = defaultTarget
	}

	source := endpoint
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		source = u.Host
	}

	return &service{
		client:   &http.Client{Timeout: fetchTimeout},
		rates:    rates,
		logger:   logger,
		endpoint: endpoint,
		base:     base,
		target:   target,
		source:   source,
	}
}

// Rate returns the current conversion rate for the configured pair. A fresh
// cached value is served without fetching. When the fetch fails, any cached
// value (however stale) is served with a warning; with no cached value the
// error surfaces as ErrRateUnavailable.
func (s *service) Rate(ctx context.Context) (model.FxRate, error) {
	if entry, ok := s.rates.Get(slotKey); ok {
		rate := entry.Value
		rate.Cached = true
		return rate, nil
	}

	rate, err := s.fetch(ctx)
	if err != nil {
		if entry, ok := s.rates.Peek(slotKey); ok {
			s.logger.Warn().Err(err).Msg("rate fetch failed, serving cached value")
			stale := entry.Value
			stale.Cached = true
			stale.Warning = fmt.Sprintf("Using cached rate due to fetch error: %v", err)
			return stale, nil
		}
		return model.FxRate{}, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	s.rates.Put(slotKey, rate)
	return rate, nil
}

func (s *service) fetch(ctx context.Context) (model.FxRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"/"+s.base, nil)
	if err != nil {
		return model.FxRate{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return model.FxRate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.FxRate{}, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.FxRate{}, err
	}

	rate, ok := payload.Rates[s.target]
	if !ok {
		return model.FxRate{}, fmt.Errorf("%s rate not present in response", s.target)
	}

	return model.FxRate{
		Base:   s.base,
		Target: s.target,
		Rate:   rate,
		Source: s.source,
	}, nil
}
