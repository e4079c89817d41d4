package catalog

import (
	"github.com/elC0mpa/aws-finlens/model"
)

type service struct {
	nameToID    map[string]string
	billingToID map[string]string
	aliases     []aliasSet
}

// aliasSet holds the normalized aliases for one internal service id
type aliasSet struct {
	id      string
	aliases []string
}

type CatalogService interface {
	MapBillingName(name string) (string, bool)
	DisplayNameForStem(stem string) string
	ServiceIDForStem(stem string) string
	Category(displayName string) string
	Services() []model.ServiceInfo
}
