package flag

import (
	"flag"

	"github.com/elC0mpa/aws-finlens/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	configFile := flag.String("config", "", "Path to a YAML configuration file")
	dataDir := flag.String("data", "", "Inventory data directory (overrides config)")
	port := flag.Int("port", 0, "HTTP listen port (overrides config)")
	region := flag.String("region", "", "AWS region used for Cost Explorer queries")
	profile := flag.String("profile", "", "AWS profile for the one-shot terminal report")
	report := flag.Bool("report", false, "Render a terminal cost report instead of serving")
	chart := flag.Bool("chart", false, "Include a by-service chart in the terminal report")

	flag.Parse()

	return model.Flags{
		ConfigFile: *configFile,
		DataDir:    *dataDir,
		Port:       *port,
		Region:     *region,
		Profile:    *profile,
		Report:     *report,
		Chart:      *chart,
	}, nil
}
