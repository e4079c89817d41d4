package inventory

import (
	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/service/catalog"
	"github.com/rs/zerolog"
)

type service struct {
	dataDir string
	catalog catalog.CatalogService
	logger  zerolog.Logger
}

type InventoryService interface {
	Profiles() ([]model.ProfileInfo, error)
	HasProfile(profile string) bool
	Regions(profile string) []string
	AccountData(profile string) (map[string]model.ServiceData, error)
	Discovery() (model.Discovery, error)
	RegionServiceData(profile, region, serviceID string) (*model.RegionServiceData, error)
}
