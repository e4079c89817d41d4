package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{120.455, 120.46},
		{40.0, 40.0},
		{0.004, 0.0},
		{0.005, 0.01},
		{-3.256, -3.26},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCostSnapshot_JSONShape(t *testing.T) {
	percent := 10.0
	snap := CostSnapshot{
		Total:                  165.0,
		ByService:              map[string]float64{"ec2": 120.46},
		PreviousTotal:          150.0,
		MonthlyChangePercent:   &percent,
		MonthlyChangeDirection: ChangeUp,
		TrendWindowDays:        9,
	}

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"total": 165.0,
		"byService": {"ec2": 120.46},
		"previousTotal": 150.0,
		"monthlyChangePercent": 10.0,
		"monthlyChangeDirection": "up",
		"trendWindowDays": 9
	}`, string(data))

	var decoded CostSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, snap, decoded)
}

func TestEmptyCostSnapshot(t *testing.T) {
	snap := EmptyCostSnapshot()

	assert.Equal(t, 0.0, snap.Total)
	assert.NotNil(t, snap.ByService)
	assert.Empty(t, snap.ByService)
	assert.Nil(t, snap.MonthlyChangePercent)
	assert.Equal(t, ChangeFlat, snap.MonthlyChangeDirection)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"total": 0,
		"byService": {},
		"previousTotal": 0,
		"monthlyChangePercent": null,
		"monthlyChangeDirection": "flat",
		"trendWindowDays": 0
	}`, string(data))
}
