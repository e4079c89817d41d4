package awscostexplorer

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/aws-finlens/model"
	"github.com/stretchr/testify/assert"
)

func TestConvertGroups(t *testing.T) {
	groups := []types.Group{
		{
			Keys: []string{"AWS Lambda"},
			Metrics: map[string]types.MetricValue{
				costsAggregation: {Amount: aws.String("12.5")},
			},
		},
		{
			Keys: []string{"Amazon Simple Storage Service"},
			Metrics: map[string]types.MetricValue{
				costsAggregation: {Amount: aws.String("-3.25")},
			},
		},
	}

	lines := convertGroups(groups)

	assert.Equal(t, []model.CostLine{
		{ServiceName: "AWS Lambda", Amount: 12.5},
		{ServiceName: "Amazon Simple Storage Service", Amount: -3.25},
	}, lines)
}

func TestConvertGroups_SkipsMalformedEntries(t *testing.T) {
	tests := []struct {
		name  string
		group types.Group
	}{
		{
			name: "no keys",
			group: types.Group{
				Metrics: map[string]types.MetricValue{
					costsAggregation: {Amount: aws.String("1.0")},
				},
			},
		},
		{
			name:  "missing metric",
			group: types.Group{Keys: []string{"AWS Lambda"}},
		},
		{
			name: "nil amount",
			group: types.Group{
				Keys: []string{"AWS Lambda"},
				Metrics: map[string]types.MetricValue{
					costsAggregation: {},
				},
			},
		},
		{
			name: "unparsable amount",
			group: types.Group{
				Keys: []string{"AWS Lambda"},
				Metrics: map[string]types.MetricValue{
					costsAggregation: {Amount: aws.String("not-a-number")},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, convertGroups([]types.Group{tt.group}))
		})
	}
}
