// main.go
package main

import (
	"log"

	"ticket-purchase/cmd"
	"ticket-purchase/internal/wire"
	"ticket-purchase/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("payment_driver", config.Payment.Driver),
		zap.String("seat_driver", config.Seat.Driver),
	)

	// Connect payment gateway and seat reservation service
	gateways, err := wire.NewGateways(config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize gateways", zap.Error(err))
	}
	defer gateways.Close()

	// Wire all dependencies
	app := wire.Wiring(gateways, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
