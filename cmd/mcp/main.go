package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-finlens/cmd/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"aws-finlens-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterFinlensTools(s, cfg.AWSRegion, cfg.AWSProfile, cfg.DataDir, cfg.FxTarget)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
