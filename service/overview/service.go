package overview

import (
	"context"
	"sort"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/rs/zerolog"
)

func NewService(inventory Inventory, snapshots Snapshots, logger zerolog.Logger) *service {
	return &service{
		inventory: inventory,
		snapshots: snapshots,
		logger:    logger,
	}
}

// ProfileOverview merges the inventoried baseline with the live snapshot.
// Live per-service figures override the baseline when positive; the headline
// total is the live total when positive, else the sum of the item costs.
func (s *service) ProfileOverview(ctx context.Context, profile string) (*model.ProfileOverview, error) {
	data, err := s.inventory.AccountData(profile)
	if err != nil {
		return nil, err
	}

	items := make([]model.ServiceOverview, 0, len(data))
	for id, serviceData := range data {
		item := model.ServiceOverview{
			ID:            id,
			Name:          serviceData.ServiceName,
			ResourceCount: serviceData.ResourceCount,
			HealthStatus:  "healthy",
		}
		if serviceData.MonthlyCost != nil {
			baseline := model.Round2(*serviceData.MonthlyCost)
			item.MonthlyCost = &baseline
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})

	live := s.snapshots.ProfileSnapshot(ctx, profile)

	for i := range items {
		if amount, ok := live.ByService[items[i].ID]; ok && amount > 0 {
			rounded := model.Round2(amount)
			items[i].MonthlyCost = &rounded
		}
	}

	total := live.Total
	if total <= 0 {
		var sum float64
		for _, item := range items {
			if item.MonthlyCost != nil {
				sum += *item.MonthlyCost
			}
		}
		total = model.Round2(sum)
	}

	totalResources := 0
	for _, item := range items {
		totalResources += item.ResourceCount
	}

	direction := live.MonthlyChangeDirection
	if direction == "" {
		direction = model.ChangeFlat
	}

	return &model.ProfileOverview{
		Profile:                profile,
		Services:               items,
		TotalServices:          len(items),
		TotalResources:         totalResources,
		TotalMonthlyCost:       total,
		PreviousMonthlyCost:    live.PreviousTotal,
		MonthlyChangePercent:   live.MonthlyChangePercent,
		MonthlyChangeDirection: direction,
		TrendWindowDays:        live.TrendWindowDays,
	}, nil
}
