package main

import (
	"context"
	"log"

	"github.com/appquanta/appquanta-backend/config"
	"github.com/appquanta/appquanta-backend/internal/apps/repository"
	"github.com/appquanta/appquanta-backend/internal/auth"
	"github.com/appquanta/appquanta-backend/internal/bootstrap"
	"github.com/appquanta/appquanta-backend/internal/builds"
	"github.com/appquanta/appquanta-backend/internal/storage/postgres"
	"github.com/appquanta/appquanta-backend/internal/storage/s3"
)

const serviceName = "appquanta-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	var verifier auth.TokenVerifier
	switch cfg.Auth.Provider {
	case "firebase":
		verifier, err = auth.NewFirebaseVerifier(ctx, &cfg.Auth)
		if err != nil {
			log.Fatalf("firebase auth: %v", err)
		}
	default:
		verifier = auth.NewSupabaseVerifier(&cfg.Auth)
	}

	artifacts, err := s3.NewAPKStore(ctx, &cfg.Storage)
	if err != nil {
		log.Fatalf("artifact store: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		DB:          db,
		Verifier:    verifier,
		Store:       repository.NewAppRepository(db),
		Artifacts:   artifacts,
		Builds:      builds.NewStatusRepository(redisClient),
	})

	log.Printf("[info] %s v%s listening on :%s (auth=%s)",
		serviceName, cfg.App.Version, cfg.Server.Port, cfg.Auth.Provider)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
