package response

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// ServiceCost represents month-to-date cost for a single service
type ServiceCost struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

// CostSnapshot represents month-to-date cost data for a profile
type CostSnapshot struct {
	Total           float64       `json:"total"`
	Services        []ServiceCost `json:"services"`
	PreviousTotal   float64       `json:"previous_total"`
	ChangePercent   *float64      `json:"change_percent,omitempty"`
	ChangeDirection string        `json:"change_direction"`
	TrendWindowDays int           `json:"trend_window_days"`
	Currency        string        `json:"currency"`
}

// OverviewRow is one service line of a profile overview
type OverviewRow struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ResourceCount int      `json:"resource_count"`
	MonthlyCost   *float64 `json:"monthly_cost,omitempty"`
}

// Overview summarizes a profile
type Overview struct {
	Profile         string        `json:"profile"`
	Services        []OverviewRow `json:"services"`
	TotalResources  int           `json:"total_resources"`
	TotalCost       float64       `json:"total_monthly_cost"`
	PreviousCost    float64       `json:"previous_monthly_cost"`
	ChangePercent   *float64      `json:"change_percent,omitempty"`
	ChangeDirection string        `json:"change_direction"`
	TrendWindowDays int           `json:"trend_window_days"`
}

// ExchangeRate represents a currency conversion rate
type ExchangeRate struct {
	Base    string  `json:"base"`
	Target  string  `json:"target"`
	Rate    float64 `json:"rate"`
	Cached  bool    `json:"cached"`
	Source  string  `json:"source"`
	Warning string  `json:"warning,omitempty"`
}
