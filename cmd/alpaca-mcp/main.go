// Package main is the entry point for the alpaca-mcp server.
//
// This package initializes the application, loads credentials and endpoints
// from the environment (optionally seeded from a .env file), and starts the
// MCP server on the stdio transport. The startup sequence is:
//
// 1. Load .env if present
// 2. Initialize logging (stderr or debug file; stdout stays clean for MCP)
// 3. Build configuration from the environment
// 4. Register the Alpaca tools and serve stdio until EOF
package main

import (
	"fmt"
	"os"

	"github.com/cesarvarela/alpaca-mcp/internal/config"
	"github.com/cesarvarela/alpaca-mcp/internal/logging"
	"github.com/cesarvarela/alpaca-mcp/internal/mcp"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "alpaca-mcp",
	Short: "MCP server exposing Alpaca market data and broker tools",
	Long: "alpaca-mcp is a Model Context Protocol server that exposes Alpaca\n" +
		"asset listings, historical stock bars, market calendar days, and news\n" +
		"articles as tools callable by MCP clients over stdio.",
	RunE: runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", mcp.ServerName, mcp.ServerVersion)
	},
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.NewAppLogger()

	cfg := config.FromEnv()
	if err := cfg.ValidateCredentials(); err != nil {
		// Don't refuse to start: tool calls report the configuration error
		// through the envelope, which is friendlier to MCP clients than a
		// dead subprocess.
		logger.Warn("Starting without Alpaca credentials; tool calls will fail", "error", err)
	}

	srv := mcp.NewServer(cfg, logger)
	if err := srv.Serve(); err != nil {
		logger.Error("MCP server failed", "error", err)
		return err
	}

	return nil
}

func main() {
	// Environment variables win over .env entries; a missing .env is fine.
	if err := godotenv.Load(); err == nil {
		logging.Debug("Loaded environment from .env")
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
