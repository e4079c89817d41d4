package model

import "math"

// Round2 rounds an amount to two decimal places, the precision every
// externally visible cost figure carries
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ChangeDirection classifies the month-over-month cost movement
type ChangeDirection string

const (
	ChangeUp   ChangeDirection = "up"
	ChangeDown ChangeDirection = "down"
	ChangeFlat ChangeDirection = "flat"
)

// CostLine is a single line item from the billing provider after parsing
type CostLine struct {
	ServiceName string
	Amount      float64
}

// CostSnapshot contains month-to-date cost data for a profile
type CostSnapshot struct {
	Total                  float64            `json:"total"`
	ByService              map[string]float64 `json:"byService"`
	PreviousTotal          float64            `json:"previousTotal"`
	MonthlyChangePercent   *float64           `json:"monthlyChangePercent"`
	MonthlyChangeDirection ChangeDirection    `json:"monthlyChangeDirection"`
	TrendWindowDays        int                `json:"trendWindowDays"`
}

// EmptyCostSnapshot is the degraded snapshot returned when the billing
// provider is unavailable
func EmptyCostSnapshot() CostSnapshot {
	return CostSnapshot{
		ByService:              map[string]float64{},
		MonthlyChangeDirection: ChangeFlat,
	}
}

// ServiceCost represents cost for a single service
type ServiceCost struct {
	Name   string
	Amount float64
}
