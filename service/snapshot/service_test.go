package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/service/cache"
	"github.com/elC0mpa/aws-finlens/service/catalog"
	awscostexplorer "github.com/elC0mpa/aws-finlens/service/costexplorer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	lines    []model.CostLine
	linesErr error
	totals   map[string]float64

	groupedWindows [][2]time.Time
	totalWindows   [][2]time.Time
}

func (p *stubProvider) GroupedCosts(_ context.Context, start, end time.Time) ([]model.CostLine, error) {
	p.groupedWindows = append(p.groupedWindows, [2]time.Time{start, end})
	if p.linesErr != nil {
		return nil, p.linesErr
	}
	return p.lines, nil
}

func (p *stubProvider) PeriodTotal(_ context.Context, start, end time.Time) (float64, error) {
	p.totalWindows = append(p.totalWindows, [2]time.Time{start, end})
	return p.totals[start.Format("2006-01-02")], nil
}

type fixture struct {
	service  *service
	provider *stubProvider
	calls    *int
	now      *time.Time
}

func newFixture(t *testing.T, provider *stubProvider, at time.Time) fixture {
	t.Helper()

	now := at
	calls := 0
	clock := func() time.Time { return now }
	svc := NewServiceWithClock(
		func(ctx context.Context, profile string) (awscostexplorer.CostService, error) {
			calls++
			return provider, nil
		},
		catalog.NewService(),
		cache.NewWithClock[model.CostSnapshot](DefaultTTL, clock),
		zerolog.Nop(),
		clock,
	)
	return fixture{service: svc, provider: provider, calls: &calls, now: &now}
}

func TestProfileSnapshot_MonthToDate(t *testing.T) {
	provider := &stubProvider{
		lines: []model.CostLine{
			{ServiceName: "EC2", Amount: 120.455},
			{ServiceName: "Amazon Relational Database Service", Amount: 40.0},
		},
		totals: map[string]float64{
			"2024-03-01": 165.00,
			"2024-02-01": 150.00,
		},
	}
	f := newFixture(t, provider, time.Date(2024, time.March, 9, 15, 30, 0, 0, time.UTC))

	snap := f.service.ProfileSnapshot(context.Background(), "acme")

	assert.Equal(t, map[string]float64{"ec2": 120.46, "rds": 40.0}, snap.ByService)
	assert.Equal(t, 165.0, snap.Total)
	assert.Equal(t, 150.0, snap.PreviousTotal)
	require.NotNil(t, snap.MonthlyChangePercent)
	assert.Equal(t, 10.0, *snap.MonthlyChangePercent)
	assert.Equal(t, model.ChangeUp, snap.MonthlyChangeDirection)
	assert.Equal(t, 9, snap.TrendWindowDays)

	require.Len(t, provider.groupedWindows, 1)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), provider.groupedWindows[0][0])
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), provider.groupedWindows[0][1])

	require.Len(t, provider.totalWindows, 2)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), provider.totalWindows[1][0])
	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), provider.totalWindows[1][1])
}

func TestProfileSnapshot_FiltersCreditsAndUnknownLines(t *testing.T) {
	provider := &stubProvider{
		lines: []model.CostLine{
			{ServiceName: "EC2", Amount: 10.0},
			{ServiceName: "EC2", Amount: -5.0},
			{ServiceName: "Mystery Offering LLC", Amount: 7.0},
		},
		totals: map[string]float64{
			"2024-03-01": 17.0,
			"2024-02-01": 17.0,
		},
	}
	f := newFixture(t, provider, time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC))

	snap := f.service.ProfileSnapshot(context.Background(), "acme")

	assert.Equal(t, map[string]float64{"ec2": 10.0}, snap.ByService)
	// the unattributed line still counts toward the ungrouped total
	assert.Equal(t, 17.0, snap.Total)
}

func TestProfileSnapshot_PreviousWindowCappedAtMonthEnd(t *testing.T) {
	provider := &stubProvider{
		totals: map[string]float64{
			"2024-03-01": 10.0,
			"2024-02-01": 10.0,
		},
	}
	f := newFixture(t, provider, time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC))

	snap := f.service.ProfileSnapshot(context.Background(), "acme")

	assert.Equal(t, 31, snap.TrendWindowDays)
	require.Len(t, provider.totalWindows, 2)
	// 31 elapsed days would run Feb 1 + 31d = Mar 3; the window stops at Mar 1
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), provider.totalWindows[1][0])
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), provider.totalWindows[1][1])
}

func TestProfileSnapshot_ChangeDirection(t *testing.T) {
	tests := []struct {
		name          string
		current       float64
		previous      float64
		wantDirection model.ChangeDirection
	}{
		{"clearly up", 165.0, 150.0, model.ChangeUp},
		{"clearly down", 120.0, 150.0, model.ChangeDown},
		{"unchanged", 150.0, 150.0, model.ChangeFlat},
		{"just above flat band", 100.06, 100.0, model.ChangeUp},
		{"at flat band", 100.05, 100.0, model.ChangeFlat},
		{"at negative flat band", 99.95, 100.0, model.ChangeFlat},
		{"just below flat band", 99.94, 100.0, model.ChangeDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{
				totals: map[string]float64{
					"2024-03-01": tt.current,
					"2024-02-01": tt.previous,
				},
			}
			f := newFixture(t, provider, time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC))

			snap := f.service.ProfileSnapshot(context.Background(), "acme")

			assert.Equal(t, tt.wantDirection, snap.MonthlyChangeDirection)
			require.NotNil(t, snap.MonthlyChangePercent)
		})
	}
}

func TestProfileSnapshot_NoPreviousSpend(t *testing.T) {
	provider := &stubProvider{
		totals: map[string]float64{"2024-03-01": 42.0},
	}
	f := newFixture(t, provider, time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC))

	snap := f.service.ProfileSnapshot(context.Background(), "acme")

	assert.Nil(t, snap.MonthlyChangePercent)
	assert.Equal(t, model.ChangeFlat, snap.MonthlyChangeDirection)
	assert.Equal(t, 0.0, snap.PreviousTotal)
}

func TestProfileSnapshot_ProviderFailureReturnsEmpty(t *testing.T) {
	provider := &stubProvider{linesErr: errors.New("throttled")}
	f := newFixture(t, provider, time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC))

	snap := f.service.ProfileSnapshot(context.Background(), "acme")

	assert.Equal(t, model.EmptyCostSnapshot(), snap)

	// failed rebuilds are not cached, so the next call rebuilds again
	f.service.ProfileSnapshot(context.Background(), "acme")
	assert.Equal(t, 2, *f.calls)
}

func TestProfileSnapshot_CachedWithinTTL(t *testing.T) {
	provider := &stubProvider{
		totals: map[string]float64{
			"2024-03-01": 50.0,
			"2024-02-01": 40.0,
		},
	}
	f := newFixture(t, provider, time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC))

	first := f.service.ProfileSnapshot(context.Background(), "acme")
	*f.now = f.now.Add(DefaultTTL - time.Second)
	second := f.service.ProfileSnapshot(context.Background(), "acme")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, *f.calls)

	*f.now = f.now.Add(2 * time.Second)
	f.service.ProfileSnapshot(context.Background(), "acme")
	assert.Equal(t, 2, *f.calls)
}
