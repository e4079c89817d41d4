package service

import (
	"context"

	"github.com/elC0mpa/aws-finlens/model"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// SnapshotService provides live month-to-date cost snapshots per profile
type SnapshotService interface {
	ProfileSnapshot(ctx context.Context, profile string) model.CostSnapshot
}

// RateService provides the current currency conversion rate
type RateService interface {
	Rate(ctx context.Context) (model.FxRate, error)
}

// InventoryService reads the collected resource inventory
type InventoryService interface {
	Profiles() ([]model.ProfileInfo, error)
	HasProfile(profile string) bool
	Regions(profile string) []string
	AccountData(profile string) (map[string]model.ServiceData, error)
	Discovery() (model.Discovery, error)
	RegionServiceData(profile, region, serviceID string) (*model.RegionServiceData, error)
}

// OverviewService assembles per-profile cost overviews
type OverviewService interface {
	ProfileOverview(ctx context.Context, profile string) (*model.ProfileOverview, error)
}
