package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dod-quiz/internal/api"
	"dod-quiz/internal/config"
	applog "dod-quiz/internal/logger"
	"dod-quiz/internal/repository"
	"dod-quiz/internal/router"
	"dod-quiz/internal/service"
	"dod-quiz/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	configDir := pflag.String("config", "./config", "directory holding config.yaml")
	pflag.String("port", ":5555", "address to listen on")
	pflag.Parse()

	cfg, err := config.Load(*configDir, pflag.CommandLine)
	if err != nil {
		log.Fatalf("failed load config: %s", err)
	}

	logger := applog.New(cfg.Env, false)
	defer logger.Sync()

	if cfg.FileUsed == "" {
		logger.Warn("config.yaml not found, relying on defaults and environment variables")
	}
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	secret := cfg.Quiz.Secret
	if secret == "" {
		secret, err = utils.GenerateSecret(32)
		if err != nil {
			logger.Fatal("failed generate quiz secret", zap.Error(err))
		}
		logger.Warn("quiz.secret not set, answer tokens will not survive a restart")
	}

	sightRepo, err := repository.NewSightRepository(cfg.Decks, logger)
	if err != nil {
		logger.Fatal("failed load decks", zap.Error(err))
	}
	statsRepo, err := repository.NewStatsRepository(cfg.Stats.Path, logger)
	if err != nil {
		logger.Fatal("failed init stats", zap.Error(err))
	}

	quizService := service.NewQuizService(sightRepo, statsRepo, secret, cfg.Quiz.ImageURL, logger)
	quizHandler := api.NewQuizHandler(quizService, logger)

	r := router.SetupRouter(quizHandler, router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		ForceHTTPS:     cfg.Server.ForceHTTPS,
		AssetsDir:      cfg.Server.AssetsDir,
	}, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started", zap.String("addr", "http://localhost"+cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("server stopped")
}
