package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-fitness-planner/internal/config"
	"ai-fitness-planner/internal/llm"
	"ai-fitness-planner/internal/planner"
	"ai-fitness-planner/internal/server"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	// Without a credential the client stays nil and the gateway answers every
	// generation request with an authorization failure.
	var client llm.ModelClient
	if cfg.GeminiAPIKey != "" {
		client, err = llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Gemini client")
		}
		defer client.Close()
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, plan generation will be rejected")
	}

	gateway := llm.NewGateway(cfg.GeminiAPIKey, client, log)
	fitnessPlanner := planner.NewPlanner(gateway)
	store := planner.NewPlanStore()

	srv := server.NewServer(cfg, fitnessPlanner, store, log).HTTPServer()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Fitness planner listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
