package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/matchfit/matchfit-api/internal/api"
	"github.com/matchfit/matchfit-api/internal/core/service"
	"github.com/matchfit/matchfit-api/internal/infrastructure/ai/gemini"
	mongodb "github.com/matchfit/matchfit-api/internal/infrastructure/db/mongo"
	redisdb "github.com/matchfit/matchfit-api/internal/infrastructure/db/redis"
	"github.com/matchfit/matchfit-api/internal/infrastructure/queue"
	"github.com/matchfit/matchfit-api/internal/pkg/config"
	"github.com/matchfit/matchfit-api/pkg/logger"
)

// @title           Matchfit API
// @version         1.0
// @description     Digital invitations, RSVP tracking, a small shop and generative styling advice.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Generative client ---
	aiClient := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	})

	// --- RSVP activity pipeline ---
	dispatcher := queue.NewDispatcher(0, mongodb.NewActivityRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Mongo:     db,
		Redis:     rdb,
		AI:        aiClient,
		Recorder:  dispatcher,
		JWTSecret: cfg.JWTSecret,
		JWTTTL:    cfg.JWTTTL,
		Bootstrap: service.BootstrapAdmin{
			Identifier: cfg.Bootstrap.AdminIdentifier,
			Password:   cfg.Bootstrap.AdminPassword,
			Name:       cfg.Bootstrap.AdminName,
		},
		TextModel: cfg.Gemini.TextModel,
		FaceModel: cfg.Gemini.VisionModel,
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewInvitationRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewRSVPRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewOrderRepository(db).EnsureIndexes(ctx)
}
