package model

// Discovery is the account → region → category → services map the dashboard
// uses to build its navigation tree
type Discovery struct {
	Accounts []string                       `json:"accounts"`
	Regions  map[string][]string            `json:"regions"`
	Services map[string]map[string][]string `json:"services"`
}

// EmptyDiscovery is the structure served when no inventory data exists
func EmptyDiscovery() Discovery {
	return Discovery{
		Accounts: []string{},
		Regions:  map[string][]string{},
		Services: map[string]map[string][]string{},
	}
}

// RegionServiceData is one per-region service report as served to the
// dashboard data endpoints
type RegionServiceData struct {
	SchemaVersion string              `json:"schema_version"`
	GeneratedAt   string              `json:"generated_at"`
	Service       RegionServiceInfo   `json:"service"`
	Summary       ScanSummary         `json:"summary"`
	Columns       []string            `json:"columns"`
	Resources     []map[string]string `json:"resources"`
}

type RegionServiceInfo struct {
	ServiceName string `json:"service_name"`
	Region      string `json:"region"`
	Profile     string `json:"profile"`
}

type ScanSummary struct {
	ResourceCount int    `json:"resource_count"`
	ScanStatus    string `json:"scan_status"`
}
