package main

import "os"

// Config holds environment-based configuration for the MCP server
type Config struct {
	AWSRegion  string
	AWSProfile string
	DataDir    string
	FxTarget   string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AWSRegion:  getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSProfile: os.Getenv("AWS_PROFILE"),
		DataDir:    getEnvOrDefault("FINLENS_DATA_DIR", "Data"),
		FxTarget:   getEnvOrDefault("FINLENS_FX_TARGET", "INR"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
