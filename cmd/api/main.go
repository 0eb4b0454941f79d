package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medisupply-api/internal/config"
	"medisupply-api/internal/logging"
	"medisupply-api/internal/mailer"
	"medisupply-api/internal/repository"
	"medisupply-api/internal/retry"
	"medisupply-api/internal/routes"
	"medisupply-api/internal/sampledata"
	"medisupply-api/internal/store"
	"medisupply-api/internal/store/memstore"
	"medisupply-api/internal/store/mongostore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Configuración incompleta: condición fatal de arranque.
		log.Fatalln("❌ configuration error:", err)
	}

	logger, err := logging.Setup(cfg.LoggerMode, cfg.LoggerFile)
	if err != nil {
		log.Fatalln("❌ logger setup error:", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := openStore(cfg)
	if err != nil {
		zap.S().Fatalw("store connection failed", "backend", cfg.StoreBackend, "error", err)
	}
	zap.S().Infow("store connected", "backend", cfg.StoreBackend)

	gateway := repository.NewGateway(db,
		repository.WithProbeURL(cfg.ProbeURL),
		repository.WithRetryConfig(retry.Config{
			MaxAttempts: retry.DefaultMaxAttempts,
			BaseDelay:   retry.DefaultBaseDelay,
		}),
	)

	router := gin.Default()
	routes.RegisterRoutes(router, routes.Deps{
		Gateway:  gateway,
		Mailer:   mailer.New(cfg.SMTP),
		ProbeURL: cfg.ProbeURL,
	})

	zap.S().Infof("🚀 Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		zap.S().Fatalw("server stopped", "error", err)
	}
}

func openStore(cfg *config.Config) (store.Database, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		db := memstore.New()
		if err := sampledata.Seed(context.Background(), db); err != nil {
			return nil, err
		}
		return db, nil
	default:
		client, err := mongostore.Connect(context.Background(), cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return mongostore.New(client.Database(cfg.MongoDB)), nil
	}
}
