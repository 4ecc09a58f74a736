package main

import (
	"OmniCalc/internal/config"
	"OmniCalc/pkg/log"
	"OmniCalc/pkg/redis"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded, using process environment: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMailerFromEnv(),
		config.WithRedisServer(redisServer),
		config.WithMiddleware(),
	)
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "Failed to build server")
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
