package overview

import (
	"context"
	"errors"
	"testing"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInventory struct {
	data map[string]model.ServiceData
	err  error
}

func (s *stubInventory) AccountData(string) (map[string]model.ServiceData, error) {
	return s.data, s.err
}

type stubSnapshots struct {
	snapshot model.CostSnapshot
}

func (s *stubSnapshots) ProfileSnapshot(context.Context, string) model.CostSnapshot {
	return s.snapshot
}

func ptr(v float64) *float64 { return &v }

func TestProfileOverview_MergesLiveCosts(t *testing.T) {
	inventory := &stubInventory{data: map[string]model.ServiceData{
		"ec2": {ServiceName: "EC2", ServiceID: "ec2", ResourceCount: 3, MonthlyCost: ptr(100.0)},
		"s3":  {ServiceName: "S3", ServiceID: "s3", ResourceCount: 5, MonthlyCost: ptr(12.5)},
		"sqs": {ServiceName: "SQS", ServiceID: "sqs", ResourceCount: 2},
	}}
	percent := 10.0
	snapshots := &stubSnapshots{snapshot: model.CostSnapshot{
		Total:                  165.0,
		ByService:              map[string]float64{"ec2": 120.46},
		PreviousTotal:          150.0,
		MonthlyChangePercent:   &percent,
		MonthlyChangeDirection: model.ChangeUp,
		TrendWindowDays:        9,
	}}

	svc := NewService(inventory, snapshots, zerolog.Nop())
	result, err := svc.ProfileOverview(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, "acme", result.Profile)
	assert.Equal(t, 3, result.TotalServices)
	assert.Equal(t, 10, result.TotalResources)
	assert.Equal(t, 165.0, result.TotalMonthlyCost)
	assert.Equal(t, 150.0, result.PreviousMonthlyCost)
	assert.Equal(t, model.ChangeUp, result.MonthlyChangeDirection)
	assert.Equal(t, 9, result.TrendWindowDays)

	require.Len(t, result.Services, 3)
	// sorted by id
	assert.Equal(t, "ec2", result.Services[0].ID)
	assert.Equal(t, "s3", result.Services[1].ID)
	assert.Equal(t, "sqs", result.Services[2].ID)

	// the live figure overrides the inventoried baseline
	require.NotNil(t, result.Services[0].MonthlyCost)
	assert.Equal(t, 120.46, *result.Services[0].MonthlyCost)
	// no live figure keeps the baseline
	require.NotNil(t, result.Services[1].MonthlyCost)
	assert.Equal(t, 12.5, *result.Services[1].MonthlyCost)
	// no figure at all stays nil
	assert.Nil(t, result.Services[2].MonthlyCost)
}

func TestProfileOverview_FallsBackToBaselineTotal(t *testing.T) {
	inventory := &stubInventory{data: map[string]model.ServiceData{
		"ec2": {ServiceName: "EC2", ServiceID: "ec2", ResourceCount: 1, MonthlyCost: ptr(100.0)},
		"s3":  {ServiceName: "S3", ServiceID: "s3", ResourceCount: 1, MonthlyCost: ptr(12.5)},
	}}
	snapshots := &stubSnapshots{snapshot: model.EmptyCostSnapshot()}

	svc := NewService(inventory, snapshots, zerolog.Nop())
	result, err := svc.ProfileOverview(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, 112.5, result.TotalMonthlyCost)
	assert.Equal(t, model.ChangeFlat, result.MonthlyChangeDirection)
	assert.Nil(t, result.MonthlyChangePercent)
}

func TestProfileOverview_EmptyInventory(t *testing.T) {
	inventory := &stubInventory{data: map[string]model.ServiceData{}}
	snapshots := &stubSnapshots{snapshot: model.EmptyCostSnapshot()}

	svc := NewService(inventory, snapshots, zerolog.Nop())
	result, err := svc.ProfileOverview(context.Background(), "acme")
	require.NoError(t, err)

	assert.Empty(t, result.Services)
	assert.Equal(t, 0, result.TotalResources)
	assert.Equal(t, 0.0, result.TotalMonthlyCost)
}

func TestProfileOverview_InventoryError(t *testing.T) {
	inventory := &stubInventory{err: errors.New("disk gone")}
	snapshots := &stubSnapshots{}

	svc := NewService(inventory, snapshots, zerolog.Nop())
	_, err := svc.ProfileOverview(context.Background(), "acme")
	assert.Error(t, err)
}
