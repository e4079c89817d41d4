package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/server"
	"github.com/elC0mpa/aws-finlens/service/awsconfig"
	"github.com/elC0mpa/aws-finlens/service/cache"
	"github.com/elC0mpa/aws-finlens/service/catalog"
	awscostexplorer "github.com/elC0mpa/aws-finlens/service/costexplorer"
	"github.com/elC0mpa/aws-finlens/service/flag"
	"github.com/elC0mpa/aws-finlens/service/fxrate"
	"github.com/elC0mpa/aws-finlens/service/inventory"
	"github.com/elC0mpa/aws-finlens/service/overview"
	"github.com/elC0mpa/aws-finlens/service/snapshot"
	awssts "github.com/elC0mpa/aws-finlens/service/sts"
	"github.com/elC0mpa/aws-finlens/utils"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse flags")
	}

	cfg, err := LoadConfig(flags.ConfigFile, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	if flags.Region != "" {
		cfg.Region = flags.Region
	}

	catalogService := catalog.NewService()
	inventoryService := inventory.NewService(cfg.DataDir, catalogService, logger)

	cfgService := awsconfig.NewService()
	providers := func(ctx context.Context, profile string) (awscostexplorer.CostService, error) {
		awsCfg, err := cfgService.GetAWSCfg(ctx, cfg.Region, profile)
		if err != nil {
			return nil, err
		}
		return awscostexplorer.NewService(awsCfg), nil
	}

	snapshotService := snapshot.NewService(
		providers,
		catalogService,
		cache.New[model.CostSnapshot](time.Duration(cfg.CostCacheTTLMinutes)*time.Minute),
		logger,
	)
	rateService := fxrate.NewService(
		cache.New[model.FxRate](time.Duration(cfg.FxCacheTTLMinutes)*time.Minute),
		logger,
		fxrate.Options{
			Endpoint: cfg.FxEndpoint,
			Base:     cfg.FxBase,
			Target:   cfg.FxTarget,
		},
	)
	overviewService := overview.NewService(inventoryService, snapshotService, logger)

	if flags.Report {
		runReport(flags, cfg, snapshotService, overviewService, logger)
		return
	}

	api := server.New(inventoryService, overviewService, rateService, catalogService, logger, cfg.FxBase, cfg.FxTarget, cfg.AllowedOrigins)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: api.Handler(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown error")
		}
	}()

	logger.Info().Int("port", cfg.Port).Str("data_dir", cfg.DataDir).Msg("serving inventory API")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server error")
	}
}

// runReport renders a one-shot terminal cost report for a single profile
func runReport(flags model.Flags, cfg *Config, snapshots snapshot.SnapshotService, overviewService overview.OverviewService, logger zerolog.Logger) {
	utils.DrawBanner()
	utils.StartSpinner()

	ctx := context.Background()

	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, cfg.Region, flags.Profile)
	if err != nil {
		utils.StopSpinner()
		logger.Fatal().Err(err).Msg("failed to configure AWS")
	}

	info, err := awssts.NewService(awsCfg).GetAccountInfo(ctx)
	if err != nil {
		utils.StopSpinner()
		logger.Fatal().Str("profile", flags.Profile).Err(err).Msg("failed to resolve account identity")
	}

	result, err := overviewService.ProfileOverview(ctx, flags.Profile)
	if err != nil {
		utils.StopSpinner()
		logger.Fatal().Str("profile", flags.Profile).Err(err).Msg("failed to build overview")
	}

	utils.StopSpinner()

	utils.DrawOverviewTable(info.AccountID, result)

	if flags.Chart {
		snap := snapshots.ProfileSnapshot(ctx, flags.Profile)
		utils.DrawServiceCostChart(flags.Profile, snap)
	}
}
