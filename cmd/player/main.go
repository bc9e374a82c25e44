package main

import (
	"context"
	"log"
	"os"

	"dod-quiz/internal/client"
	"dod-quiz/internal/config"
	applog "dod-quiz/internal/logger"
	"dod-quiz/internal/player"
	"dod-quiz/internal/session"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	pflag.String("server", "http://localhost:5555", "quiz server base URL")
	pflag.Int("timeout", 10, "request timeout in seconds")
	pflag.Bool("manual", false, "wait for 'n' instead of fetching a quiz at start")
	pflag.Bool("debug", false, "log every request as a curl command")
	pflag.String("env", "production", "development or production")
	pflag.Parse()

	cfg, err := config.LoadPlayer(pflag.CommandLine)
	if err != nil {
		log.Fatalf("failed load config: %s", err)
	}

	logger := applog.New(cfg.Env, cfg.Debug)
	defer logger.Sync()

	quizClient := client.NewQuizApiClient(cfg.Server, cfg.TimeoutSeconds, logger)
	quizClient.Debug = cfg.Debug

	p := player.New(session.New(quizClient, logger), os.Stdin, os.Stdout, cfg.Manual)
	if err := p.Run(context.Background()); err != nil {
		logger.Fatal("player stopped", zap.Error(err))
	}
}
