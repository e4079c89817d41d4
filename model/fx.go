package model

// FxRate is a currency conversion rate as served to clients
type FxRate struct {
	Base    string  `json:"base"`
	Target  string  `json:"target"`
	Rate    float64 `json:"rate"`
	Cached  bool    `json:"cached"`
	Source  string  `json:"source"`
	Warning string  `json:"warning,omitempty"`
}
