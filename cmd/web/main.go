package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/quant-tools/return-atlas/pkg/server"
	"github.com/quant-tools/return-atlas/pkg/services/config"
	"github.com/quant-tools/return-atlas/pkg/services/engine"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var limitsPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Return Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&limitsPath, "limits", "l", "",
		"Path to a workload limits file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	limits, err := config.LoadLimits(limitsPath)
	if err != nil {
		return fmt.Errorf("failed to load limits: %w", err)
	}

	logger.Info().
		Int("max_enumeration_periods", limits.MaxEnumerationPeriods).
		Int("max_simulation_periods", limits.MaxSimulationPeriods).
		Int("max_simulations", limits.MaxSimulations).
		Msg("workload limits loaded")

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Engine: engine.NewEngine(limits),
		},
	})

	return api.Start()
}
