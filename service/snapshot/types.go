package snapshot

import (
	"context"
	"time"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/service/cache"
	"github.com/elC0mpa/aws-finlens/service/catalog"
	awscostexplorer "github.com/elC0mpa/aws-finlens/service/costexplorer"
	"github.com/rs/zerolog"
)

// ProviderFactory opens a cost provider session for a named profile
type ProviderFactory func(ctx context.Context, profile string) (awscostexplorer.CostService, error)

type service struct {
	providers ProviderFactory
	catalog   catalog.CatalogService
	snapshots *cache.Cache[model.CostSnapshot]
	logger    zerolog.Logger
	now       func() time.Time
	timeout   time.Duration
}

type SnapshotService interface {
	ProfileSnapshot(ctx context.Context, profile string) model.CostSnapshot
}
