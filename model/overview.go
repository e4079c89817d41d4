package model

// ServiceOverview is one row of a profile overview
type ServiceOverview struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ResourceCount int      `json:"resourceCount"`
	HealthStatus  string   `json:"healthStatus"`
	MonthlyCost   *float64 `json:"monthlyCost,omitempty"`
}

// ProfileOverview summarizes a profile: inventoried services plus live
// month-to-date cost figures
type ProfileOverview struct {
	Profile                string            `json:"profile"`
	Services               []ServiceOverview `json:"services"`
	TotalServices          int               `json:"totalServices"`
	TotalResources         int               `json:"totalResources"`
	TotalMonthlyCost       float64           `json:"totalMonthlyCost"`
	PreviousMonthlyCost    float64           `json:"previousMonthlyCost"`
	MonthlyChangePercent   *float64          `json:"monthlyChangePercent"`
	MonthlyChangeDirection ChangeDirection   `json:"monthlyChangeDirection"`
	TrendWindowDays        int               `json:"trendWindowDays"`
}

// ProfileInfo describes one inventoried profile. ID, Name and Profile all
// carry the directory name; the dashboard keys off id
type ProfileInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Profile string   `json:"profile"`
	Region  string   `json:"region"`
	Regions []string `json:"regions"`
}

// ServiceInfo describes one supported service
type ServiceInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
