package fxrate

import (
	"context"
	"net/http"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/service/cache"
	"github.com/rs/zerolog"
)

type service struct {
	client   *http.Client
	rates    *cache.Cache[model.FxRate]
	logger   zerolog.Logger
	endpoint string
	base     string
	target   string
	source   string
}

// Options overrides the provider endpoint and currency pair
type Options struct {
	Endpoint string
	Base     string
	Target   string
}

type RateService interface {
	Rate(ctx context.Context) (model.FxRate, error)
}

// ratesPayload is the shape of the provider response we care about
type ratesPayload struct {
	Rates map[string]float64 `json:"rates"`
}
