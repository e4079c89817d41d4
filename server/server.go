package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/service"
	"github.com/elC0mpa/aws-finlens/service/catalog"
	"github.com/elC0mpa/aws-finlens/service/fxrate"
	"github.com/elC0mpa/aws-finlens/service/inventory"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Server is the read-only JSON API consumed by the dashboard front end
type Server struct {
	inventory service.InventoryService
	overview  service.OverviewService
	rates     service.RateService
	catalog   catalog.CatalogService
	logger    zerolog.Logger

	// fx pair served under /api/exchange-rate/{pair}, e.g. "usd-inr"
	ratePair string

	allowedOrigins []string
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func New(inventory service.InventoryService, overviewService service.OverviewService, rates service.RateService, catalogService catalog.CatalogService, logger zerolog.Logger, fxBase, fxTarget string, allowedOrigins []string) *Server {
	return &Server{
		inventory:      inventory,
		overview:       overviewService,
		rates:          rates,
		catalog:        catalogService,
		logger:         logger,
		ratePair:       strings.ToLower(fxBase) + "-" + strings.ToLower(fxTarget),
		allowedOrigins: allowedOrigins,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/discovery", s.handleDiscovery)
	mux.HandleFunc("GET /api/profiles", s.handleProfiles)
	mux.HandleFunc("GET /api/profiles/{profile}", s.handleProfile)
	mux.HandleFunc("GET /api/profiles/{profile}/services/{service}", s.handleProfileService)
	mux.HandleFunc("GET /api/profiles/{profile}/overview", s.handleOverview)
	mux.HandleFunc("GET /api/services", s.handleServices)
	mux.HandleFunc("GET /api/data/{account}/{region}/{service}", s.handleRegionService)
	mux.HandleFunc("GET /api/data/{account}/{region}/{category}/{service}", s.handleRegionCategoryService)
	mux.HandleFunc("GET /api/exchange-rate/{pair}", s.handleExchangeRate)

	return s.withCORS(s.withLogging(mux))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name":    "AWS FinLens API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"discovery":    "/api/discovery",
			"profiles":     "/api/profiles",
			"services":     "/api/services",
			"profile_data": "/api/profiles/{profile}",
			"service_data": "/api/profiles/{profile}/services/{service}",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDiscovery serves the navigation map. Missing data is an empty map,
// never an error.
func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	discovery, err := s.inventory.Discovery()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Unable to build discovery: %v", err))
		return
	}
	s.writeJSON(w, http.StatusOK, discovery)
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.inventory.Profiles()
	if err != nil {
		if errors.Is(err, inventory.ErrNoDataDir) {
			s.writeError(w, http.StatusNotFound, "Data directory not found")
			return
		}
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Unable to list profiles: %v", err))
		return
	}
	if profiles == nil {
		profiles = []model.ProfileInfo{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")
	if !s.inventory.HasProfile(profile) {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("Profile '%s' not found", profile))
		return
	}

	data, err := s.inventory.AccountData(profile)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Unable to read profile data: %v", err))
		return
	}

	totalResources := 0
	for _, serviceData := range data {
		totalResources += serviceData.ResourceCount
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"profile":        profile,
		"servicesCount":  len(data),
		"totalResources": totalResources,
		"services":       data,
	})
}

func (s *Server) handleProfileService(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")
	serviceID := r.PathValue("service")

	if !s.inventory.HasProfile(profile) {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("Profile '%s' not found", profile))
		return
	}

	data, err := s.inventory.AccountData(profile)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Unable to read profile data: %v", err))
		return
	}

	serviceData, ok := data[serviceID]
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("Service '%s' not found in profile '%s'", serviceID, profile))
		return
	}

	s.writeJSON(w, http.StatusOK, serviceData)
}

// handleOverview always answers with best-effort numbers: billing-provider
// failures degrade the live figures, they never fail the request
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")
	if !s.inventory.HasProfile(profile) {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("Profile '%s' not found", profile))
		return
	}

	result, err := s.overview.ProfileOverview(r.Context(), profile)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Unable to build overview: %v", err))
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	services := s.catalog.Services()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"services": services,
		"count":    len(services),
	})
}

func (s *Server) handleRegionService(w http.ResponseWriter, r *http.Request) {
	account := r.PathValue("account")
	region := r.PathValue("region")
	serviceID := r.PathValue("service")

	data, err := s.inventory.RegionServiceData(account, region, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrRegionNotFound):
			s.writeError(w, http.StatusNotFound, fmt.Sprintf("No data for %s/%s", account, region))
		case errors.Is(err, inventory.ErrServiceNotFound):
			s.writeError(w, http.StatusNotFound, fmt.Sprintf("Service '%s' not found for %s/%s", serviceID, account, region))
		default:
			s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error reading data: %v", err))
		}
		return
	}

	s.writeJSON(w, http.StatusOK, data)
}

// handleRegionCategoryService accepts the category path segment the dashboard
// sends but resolves purely by region and service
func (s *Server) handleRegionCategoryService(w http.ResponseWriter, r *http.Request) {
	s.handleRegionService(w, r)
}

func (s *Server) handleExchangeRate(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("pair") != s.ratePair {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("Unsupported currency pair '%s'", r.PathValue("pair")))
		return
	}

	rate, err := s.rates.Rate(r.Context())
	if err != nil {
		if errors.Is(err, fxrate.ErrRateUnavailable) {
			s.writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("Unable to fetch exchange rate: %v", err))
			return
		}
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Unable to fetch exchange rate: %v", err))
		return
	}

	s.writeJSON(w, http.StatusOK, rate)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, errorResponse{Detail: detail})
}
