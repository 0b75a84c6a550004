package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chronos-core/services/gamesession"
)

func main() {
	cfg := gamesession.ServiceConfig{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		BackendURL:    getEnv("CHRONOS_BACKEND_URL", "http://localhost:5000"),
		KafkaBrokers:  getEnvBrokers("KAFKA_BROKERS", nil),
		ContentBucket: getEnv("CONTENT_BUCKET", "chronos-content"),
		Session: gamesession.Config{
			SessionID:       getEnv("SESSION_ID", ""),
			TransitionDelay: getEnvDuration("TRANSITION_DELAY", 1500*time.Millisecond),
			ParadoxWindow:   getEnvDuration("PARADOX_WINDOW", 3*time.Second),
			RegenInterval:   getEnvDuration("REGEN_INTERVAL", 5*time.Second),
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down Chronos session service...")
		cancel()
	}()

	service := gamesession.NewService(cfg)
	service.Start(ctx)
	<-ctx.Done()
	service.Stop()
	log.Println("Chronos session service stopped.")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBrokers(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		brokers := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				brokers = append(brokers, trimmed)
			}
		}
		if len(brokers) > 0 {
			return brokers
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
