// Package main is the entry point for the itemforge server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/itemforge/cmd/itemforge/client"
	"github.com/KirkDiggler/itemforge/internal/logger"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "itemforge",
	Short: "Item template service",
	Long:  `itemforge stores item templates and builds item stacks from them over gRPC and HTTP.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cfg := logger.DefaultConfig()
		cfg.Level = logLevel
		cfg.Format = logFormat
		logger.Init(cfg)
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
