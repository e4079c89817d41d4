package snapshot

import (
	"context"
	"math"
	"time"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/service/cache"
	"github.com/elC0mpa/aws-finlens/service/catalog"
	"github.com/rs/zerolog"
)

const (
	// DefaultTTL is how long a computed snapshot stays fresh
	DefaultTTL = 10 * time.Minute

	// queryTimeout bounds one full rebuild (provider session + three
	// Cost Explorer calls) so degraded responses stay fast
	queryTimeout = 30 * time.Second

	// changeBand is the percent band treated as flat movement
	changeBand = 0.05
)

func NewService(providers ProviderFactory, catalogService catalog.CatalogService, snapshots *cache.Cache[model.CostSnapshot], logger zerolog.Logger) *service {
	return NewServiceWithClock(providers, catalogService, snapshots, logger, time.Now)
}

// NewServiceWithClock injects the clock used for window computation
func NewServiceWithClock(providers ProviderFactory, catalogService catalog.CatalogService, snapshots *cache.Cache[model.CostSnapshot], logger zerolog.Logger, now func() time.Time) *service {
	return &service{
		providers: providers,
		catalog:   catalogService,
		snapshots: snapshots,
		logger:    logger,
		now:       now,
		timeout:   queryTimeout,
	}
}

// ProfileSnapshot returns the month-to-date cost snapshot for a profile.
// Provider failures are absorbed: the caller always gets a snapshot, degraded
// to zero values when the billing backend is unreachable. Failed rebuilds are
// not cached.
func (s *service) ProfileSnapshot(ctx context.Context, profile string) model.CostSnapshot {
	if entry, ok := s.snapshots.Get(profile); ok {
		return entry.Value
	}

	snapshot, err := s.build(ctx, profile)
	if err != nil {
		s.logger.Warn().Str("profile", profile).Err(err).Msg("cost lookup failed, returning empty snapshot")
		return model.EmptyCostSnapshot()
	}

	s.snapshots.Put(profile, snapshot)
	return snapshot
}

func (s *service) build(ctx context.Context, profile string) (model.CostSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	provider, err := s.providers(ctx, profile)
	if err != nil {
		return model.CostSnapshot{}, err
	}

	year, month, day := s.now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	currentStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// end is exclusive for the billing API, so tomorrow includes today
	currentEnd := today.AddDate(0, 0, 1)

	elapsedDays := int(currentEnd.Sub(currentStart).Hours() / 24)
	if elapsedDays < 1 {
		elapsedDays = 1
	}

	// previous window spans the same number of elapsed days, capped at the
	// end of the previous month
	previousStart := currentStart.AddDate(0, -1, 0)
	previousEnd := previousStart.AddDate(0, 0, elapsedDays)
	if previousEnd.After(currentStart) {
		previousEnd = currentStart
	}

	lines, err := provider.GroupedCosts(ctx, currentStart, currentEnd)
	if err != nil {
		return model.CostSnapshot{}, err
	}

	byService := make(map[string]float64)
	for _, line := range lines {
		if line.Amount <= 0 {
			continue
		}
		// unattributed lines stay out of byService; the headline total
		// below still covers them
		if id, ok := s.catalog.MapBillingName(line.ServiceName); ok {
			byService[id] += line.Amount
		}
	}
	for id, amount := range byService {
		byService[id] = model.Round2(amount)
	}

	// headline totals come from separate ungrouped queries and may diverge
	// slightly from the grouped sum; that divergence is preserved
	currentTotal, err := provider.PeriodTotal(ctx, currentStart, currentEnd)
	if err != nil {
		return model.CostSnapshot{}, err
	}
	previousTotal, err := provider.PeriodTotal(ctx, previousStart, previousEnd)
	if err != nil {
		return model.CostSnapshot{}, err
	}
	currentTotal = model.Round2(currentTotal)
	previousTotal = model.Round2(previousTotal)

	result := model.CostSnapshot{
		Total:                  currentTotal,
		ByService:              byService,
		PreviousTotal:          previousTotal,
		MonthlyChangeDirection: model.ChangeFlat,
		TrendWindowDays:        elapsedDays,
	}

	if previousTotal > 0 {
		delta := (currentTotal - previousTotal) / previousTotal * 100
		percent := model.Round2(math.Abs(delta))
		result.MonthlyChangePercent = &percent
		if delta > changeBand {
			result.MonthlyChangeDirection = model.ChangeUp
		} else if delta < -changeBand {
			result.MonthlyChangeDirection = model.ChangeDown
		}
	}

	return result, nil
}
