package response

import (
	"sort"

	"github.com/elC0mpa/aws-finlens/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertCostSnapshot converts model.CostSnapshot to response.CostSnapshot
func ConvertCostSnapshot(snap model.CostSnapshot) *CostSnapshot {
	services := make([]ServiceCost, 0, len(snap.ByService))
	for id, amount := range snap.ByService {
		services = append(services, ServiceCost{ID: id, Amount: amount})
	}

	// Sort by amount descending
	sort.Slice(services, func(i, j int) bool {
		return services[i].Amount > services[j].Amount
	})

	return &CostSnapshot{
		Total:           snap.Total,
		Services:        services,
		PreviousTotal:   snap.PreviousTotal,
		ChangePercent:   snap.MonthlyChangePercent,
		ChangeDirection: string(snap.MonthlyChangeDirection),
		TrendWindowDays: snap.TrendWindowDays,
		Currency:        "USD",
	}
}

// ConvertOverview converts model.ProfileOverview to response.Overview
func ConvertOverview(result *model.ProfileOverview) *Overview {
	if result == nil {
		return nil
	}

	rows := make([]OverviewRow, 0, len(result.Services))
	for _, item := range result.Services {
		rows = append(rows, OverviewRow{
			ID:            item.ID,
			Name:          item.Name,
			ResourceCount: item.ResourceCount,
			MonthlyCost:   item.MonthlyCost,
		})
	}

	return &Overview{
		Profile:         result.Profile,
		Services:        rows,
		TotalResources:  result.TotalResources,
		TotalCost:       result.TotalMonthlyCost,
		PreviousCost:    result.PreviousMonthlyCost,
		ChangePercent:   result.MonthlyChangePercent,
		ChangeDirection: string(result.MonthlyChangeDirection),
		TrendWindowDays: result.TrendWindowDays,
	}
}

// ConvertFxRate converts model.FxRate to response.ExchangeRate
func ConvertFxRate(rate model.FxRate) *ExchangeRate {
	return &ExchangeRate{
		Base:    rate.Base,
		Target:  rate.Target,
		Rate:    rate.Rate,
		Cached:  rate.Cached,
		Source:  rate.Source,
		Warning: rate.Warning,
	}
}
