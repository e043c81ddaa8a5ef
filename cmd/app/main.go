package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"RuleChatbot/internal/config"
	"RuleChatbot/pkg/log"
	"RuleChatbot/pkg/nlp"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	env, err := config.LoadEnv()
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	thesaurus, err := config.NewLexicon(loadCtx, env, logger)
	cancel()
	if err != nil {
		logger.Fatalf("Failed to load synonym database: %v", err)
	}

	responder, err := nlp.NewResponder(nlp.DefaultCatalog(), thesaurus)
	if err != nil {
		logger.Fatal(err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	transcripts, redisServer := config.NewTranscriptRepository(env, logger)

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithResponder(responder),
		config.WithTranscriptRepository(transcripts, redisServer),
		config.WithMiddleware(env.RateLimitRPS, env.RateLimitBurst),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(env.AppPort); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Infof("Server started on port %s", env.AppPort)

	<-sigChan
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
