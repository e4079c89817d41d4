package model

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// ServiceData aggregates the inventory records collected for one service
// across all regions of a profile
type ServiceData struct {
	ServiceName   string              `json:"serviceName"`
	ServiceID     string              `json:"serviceId"`
	ResourceCount int                 `json:"resourceCount"`
	Resources     []map[string]string `json:"resources"`
	MonthlyCost   *float64            `json:"monthlyCost,omitempty"`
}
