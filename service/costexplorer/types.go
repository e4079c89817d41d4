package awscostexplorer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-finlens/model"
)

type service struct {
	client *costexplorer.Client
}

type CostService interface {
	GroupedCosts(ctx context.Context, start, end time.Time) ([]model.CostLine, error)
	PeriodTotal(ctx context.Context, start, end time.Time) (float64, error)
}
