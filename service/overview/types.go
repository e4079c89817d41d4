package overview

import (
	"context"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/rs/zerolog"
)

// Inventory is the slice of the inventory reader this assembler needs
type Inventory interface {
	AccountData(profile string) (map[string]model.ServiceData, error)
}

// Snapshots provides live month-to-date cost snapshots per profile
type Snapshots interface {
	ProfileSnapshot(ctx context.Context, profile string) model.CostSnapshot
}

type service struct {
	inventory Inventory
	snapshots Snapshots
	logger    zerolog.Logger
}

type OverviewService interface {
	ProfileOverview(ctx context.Context, profile string) (*model.ProfileOverview, error)
}
