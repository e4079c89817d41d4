package awscostexplorer

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/aws-finlens/model"
)

const (
	costsAggregation = "UnblendedCost"
	dateLayout       = "2006-01-02"
)

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GroupedCosts returns per-service cost lines for [start, end). End is
// exclusive, so month-to-date windows pass tomorrow as end.
func (s *service) GroupedCosts(ctx context.Context, start, end time.Time) ([]model.CostLine, error) {
	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format(dateLayout)),
			End:   aws.String(end.Format(dateLayout)),
		},
		Metrics: []string{costsAggregation},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String("SERVICE"),
				Type: types.GroupDefinitionTypeDimension,
			},
		},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, err
	}

	var lines []model.CostLine
	for _, result := range output.ResultsByTime {
		lines = append(lines, convertGroups(result.Groups)...)
	}
	return lines, nil
}

// PeriodTotal returns the ungrouped cost total for [start, end)
func (s *service) PeriodTotal(ctx context.Context, start, end time.Time) (float64, error) {
	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format(dateLayout)),
			End:   aws.String(end.Format(dateLayout)),
		},
		Metrics: []string{costsAggregation},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, result := range output.ResultsByTime {
		metric, ok := result.Total[costsAggregation]
		if !ok || metric.Amount == nil {
			continue
		}
		amount, err := strconv.ParseFloat(*metric.Amount, 64)
		if err != nil {
			continue
		}
		total += amount
	}
	return total, nil
}

// convertGroups turns raw API groups into typed cost lines, dropping
// entries whose amount cannot be parsed
func convertGroups(groups []types.Group) []model.CostLine {
	lines := make([]model.CostLine, 0, len(groups))

	for _, g := range groups {
		if len(g.Keys) == 0 {
			continue
		}
		metric, ok := g.Metrics[costsAggregation]
		if !ok || metric.Amount == nil {
			continue
		}
		amount, err := strconv.ParseFloat(*metric.Amount, 64)
		if err != nil {
			continue
		}
		lines = append(lines, model.CostLine{
			ServiceName: g.Keys[0],
			Amount:      amount,
		})
	}

	return lines
}
