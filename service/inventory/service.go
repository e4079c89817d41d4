package inventory

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/service/catalog"
	"github.com/rs/zerolog"
)

var (
	// ErrNoDataDir is returned when the inventory data directory does not
	// exist at all
	ErrNoDataDir = errors.New("data directory not found")

	// ErrRegionNotFound is returned when a profile has no data for the
	// requested region
	ErrRegionNotFound = errors.New("no data for region")

	// ErrServiceNotFound is returned when a region has no report for the
	// requested service
	ErrServiceNotFound = errors.New("service not found")
)

// NewService reads inventory reports laid out as
// {dataDir}/{profile}/{region}/{Service}.csv
func NewService(dataDir string, catalogService catalog.CatalogService, logger zerolog.Logger) *service {
	return &service{
		dataDir: dataDir,
		catalog: catalogService,
		logger:  logger,
	}
}

func (s *service) HasProfile(profile string) bool {
	info, err := os.Stat(filepath.Join(s.dataDir, profile))
	return err == nil && info.IsDir()
}

// Profiles lists every inventoried profile with its region spread. A missing
// data directory is ErrNoDataDir, which the API surfaces as not-found.
func (s *service) Profiles() ([]model.ProfileInfo, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoDataDir
		}
		return nil, err
	}

	var profiles []model.ProfileInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		regions := s.Regions(entry.Name())
		if regions == nil {
			regions = []string{}
		}

		region := "unknown"
		switch {
		case len(regions) == 1:
			region = regions[0]
		case len(regions) > 1:
			region = "multi-region"
		}

		profiles = append(profiles, model.ProfileInfo{
			ID:      entry.Name(),
			Name:    entry.Name(),
			Profile: entry.Name(),
			Region:  region,
			Regions: regions,
		})
	}
	return profiles, nil
}

// Discovery builds the account → region → category → services map from the
// directory layout. A missing data directory yields the empty structure, not
// an error.
func (s *service) Discovery() (model.Discovery, error) {
	discovery := model.EmptyDiscovery()

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return discovery, nil
		}
		return discovery, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		account := entry.Name()
		regions := s.Regions(account)
		if regions == nil {
			regions = []string{}
		}

		categories := map[string][]string{}
		for _, region := range regions {
			for _, stem := range s.serviceStems(account, region) {
				name := s.catalog.DisplayNameForStem(stem)
				category := s.catalog.Category(name)
				id := s.catalog.ServiceIDForStem(stem)
				if !slices.Contains(categories[category], id) {
					categories[category] = append(categories[category], id)
				}
			}
		}

		discovery.Accounts = append(discovery.Accounts, account)
		discovery.Regions[account] = regions
		discovery.Services[account] = categories
	}

	return discovery, nil
}

// RegionServiceData reads one service report for a specific profile/region.
// The service segment matches either the report filename stem or the
// canonical service id, case-insensitively.
func (s *service) RegionServiceData(profile, region, serviceID string) (*model.RegionServiceData, error) {
	regionDir := filepath.Join(s.dataDir, profile, region)
	if info, err := os.Stat(regionDir); err != nil || !info.IsDir() {
		return nil, ErrRegionNotFound
	}

	path, ok := s.findReport(regionDir, serviceID)
	if !ok {
		return nil, ErrServiceNotFound
	}

	columns, records, err := readTable(path)
	if err != nil {
		return nil, err
	}

	stamped := false
	for _, record := range records {
		if _, ok := record["Region"]; !ok {
			record["Region"] = region
			stamped = true
		}
	}
	if stamped && !slices.Contains(columns, "Region") {
		columns = append(columns, "Region")
	}
	if records == nil {
		records = []map[string]string{}
	}
	if columns == nil {
		columns = []string{}
	}

	return &model.RegionServiceData{
		SchemaVersion: "1.0.0",
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Service: model.RegionServiceInfo{
			ServiceName: serviceID,
			Region:      region,
			Profile:     profile,
		},
		Summary: model.ScanSummary{
			ResourceCount: len(records),
			ScanStatus:    "success",
		},
		Columns:   columns,
		Resources: records,
	}, nil
}

// serviceStems lists the CSV filename stems of one profile/region, sorted
func (s *service) serviceStems(profile, region string) []string {
	files, err := os.ReadDir(filepath.Join(s.dataDir, profile, region))
	if err != nil {
		return nil
	}

	var stems []string
	for _, file := range files {
		if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".csv") {
			continue
		}
		stems = append(stems, strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())))
	}
	return stems
}

// findReport locates the CSV whose stem or resolved service id matches the
// requested service, first hit in directory order wins
func (s *service) findReport(regionDir, serviceID string) (string, bool) {
	want := strings.ToLower(serviceID)
	wantCompact := strings.ReplaceAll(want, "-", "")

	files, err := os.ReadDir(regionDir)
	if err != nil {
		return "", false
	}

	for _, file := range files {
		if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".csv") {
			continue
		}
		stem := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		stemLower := strings.ToLower(stem)
		id := s.catalog.ServiceIDForStem(stem)

		if stemLower == want ||
			strings.ReplaceAll(stemLower, "_", "-") == want ||
			id == want ||
			strings.ReplaceAll(id, "-", "") == wantCompact {
			return filepath.Join(regionDir, file.Name()), true
		}
	}
	return "", false
}

// Regions lists the region subdirectories of a profile, sorted
func (s *service) Regions(profile string) []string {
	entries, err := os.ReadDir(filepath.Join(s.dataDir, profile))
	if err != nil {
		return nil
	}

	var regions []string
	for _, entry := range entries {
		if entry.IsDir() {
			regions = append(regions, entry.Name())
		}
	}
	sort.Strings(regions)
	return regions
}

// AccountData reads every service CSV for a profile, aggregated across
// regions. Unreadable files are logged and skipped so one bad report never
// hides the rest of the account.
func (s *service) AccountData(profile string) (map[string]model.ServiceData, error) {
	accountDir := filepath.Join(s.dataDir, profile)
	if _, err := os.Stat(accountDir); err != nil {
		if os.IsNotExist(err) {
			return map[string]model.ServiceData{}, nil
		}
		return nil, err
	}

	data := make(map[string]model.ServiceData)

	for _, region := range s.Regions(profile) {
		regionDir := filepath.Join(accountDir, region)
		files, err := os.ReadDir(regionDir)
		if err != nil {
			s.logger.Warn().Str("profile", profile).Str("region", region).Err(err).Msg("skipping unreadable region directory")
			continue
		}

		for _, file := range files {
			if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".csv") {
				continue
			}

			path := filepath.Join(regionDir, file.Name())
			records, err := readRecords(path)
			if err != nil {
				s.logger.Warn().Str("file", path).Err(err).Msg("skipping unreadable report")
				continue
			}
			if len(records) == 0 {
				continue
			}

			for _, record := range records {
				if _, ok := record["Region"]; !ok {
					record["Region"] = region
				}
			}

			stem := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
			serviceName := s.catalog.DisplayNameForStem(stem)
			serviceID := s.catalog.ServiceIDForStem(stem)

			entry, ok := data[serviceID]
			if !ok {
				entry = model.ServiceData{
					ServiceName: serviceName,
					ServiceID:   serviceID,
				}
			}

			entry.Resources = append(entry.Resources, records...)
			entry.ResourceCount += len(records)

			if hasCostColumn(records) {
				var extra float64
				for _, record := range records {
					extra += extractMonthlyCost(record)
				}
				existing := 0.0
				if entry.MonthlyCost != nil {
					existing = *entry.MonthlyCost
				}
				total := model.Round2(existing + model.Round2(extra))
				entry.MonthlyCost = &total
			}

			data[serviceID] = entry
		}
	}

	return data, nil
}

func hasCostColumn(records []map[string]string) bool {
	for _, record := range records {
		if hasMonthlyCostField(record) {
			return true
		}
	}
	return false
}

// readRecords reads a CSV file into header-keyed records, empty cells
// included
func readRecords(path string) ([]map[string]string, error) {
	_, records, err := readTable(path)
	return records, err
}

// readTable reads a CSV file preserving the header column order
func readTable(path string) ([]string, []map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = row[i]
			} else {
				record[column] = ""
			}
		}
		records = append(records, record)
	}
	return header, records, nil
}
