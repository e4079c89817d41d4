package flag

import (
	"github.com/elC0mpa/aws-finlens/model"
)

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}
