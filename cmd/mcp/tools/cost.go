package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/elC0mpa/aws-finlens/cmd/mcp/response"
	"github.com/elC0mpa/aws-finlens/model"
	"github.com/elC0mpa/aws-finlens/service/awsconfig"
	"github.com/elC0mpa/aws-finlens/service/cache"
	"github.com/elC0mpa/aws-finlens/service/catalog"
	awscostexplorer "github.com/elC0mpa/aws-finlens/service/costexplorer"
	"github.com/elC0mpa/aws-finlens/service/fxrate"
	"github.com/elC0mpa/aws-finlens/service/inventory"
	"github.com/elC0mpa/aws-finlens/service/overview"
	"github.com/elC0mpa/aws-finlens/service/snapshot"
	awssts "github.com/elC0mpa/aws-finlens/service/sts"
	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// RegisterFinlensTools registers all cost and inventory tools with the MCP
// server. The snapshot and rate caches are shared across tool calls.
func RegisterFinlensTools(s *server.MCPServer, region, profile, dataDir, fxTarget string) {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	catalogService := catalog.NewService()
	inventoryService := inventory.NewService(dataDir, catalogService, logger)

	cfgService := awsconfig.NewService()
	providers := func(ctx context.Context, sessionProfile string) (awscostexplorer.CostService, error) {
		awsCfg, err := cfgService.GetAWSCfg(ctx, region, sessionProfile)
		if err != nil {
			return nil, err
		}
		return awscostexplorer.NewService(awsCfg), nil
	}

	snapshotService := snapshot.NewService(
		providers,
		catalogService,
		cache.New[model.CostSnapshot](snapshot.DefaultTTL),
		logger,
	)
	rateService := fxrate.NewService(
		cache.New[model.FxRate](fxrate.DefaultTTL),
		logger,
		fxrate.Options{Target: fxTarget},
	)
	overviewService := overview.NewService(inventoryService, snapshotService, logger)

	// Account info
	s.AddTool(
		mcp.NewTool("finlens_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAccountInfoHandler(region, profile),
	)

	// Live cost snapshot
	s.AddTool(
		mcp.NewTool("finlens_get_cost_snapshot",
			mcp.WithDescription("Get month-to-date AWS costs by service with the month-over-month change"),
		),
		makeCostSnapshotHandler(snapshotService, profile),
	)

	// Profile overview
	s.AddTool(
		mcp.NewTool("finlens_get_profile_overview",
			mcp.WithDescription("Get the inventoried services of the profile with resource counts and monthly costs"),
		),
		makeOverviewHandler(overviewService, profile),
	)

	// Exchange rate
	s.AddTool(
		mcp.NewTool("finlens_get_exchange_rate",
			mcp.WithDescription("Get the current USD conversion rate used for currency display"),
		),
		makeExchangeRateHandler(rateService),
	)
}

func makeAccountInfoHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		stsSvc := awssts.NewService(awsCfg)
		info, err := stsSvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		resp := response.ConvertAccountInfo(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeCostSnapshotHandler(snapshots snapshot.SnapshotService, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap := snapshots.ProfileSnapshot(ctx, profile)

		resp := response.ConvertCostSnapshot(snap)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeOverviewHandler(overviewService overview.OverviewService, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := overviewService.ProfileOverview(ctx, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build overview: %v", err)), nil
		}

		resp := response.ConvertOverview(result)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeExchangeRateHandler(rates fxrate.RateService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rate, err := rates.Rate(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch exchange rate: %v", err)), nil
		}

		resp := response.ConvertFxRate(rate)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
