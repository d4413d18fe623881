package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/odolbodol/adboard/internal/api"
	"github.com/odolbodol/adboard/internal/config"
	"github.com/odolbodol/adboard/internal/db"
	"github.com/odolbodol/adboard/internal/logger"
	"github.com/odolbodol/adboard/internal/repository"
	"github.com/odolbodol/adboard/internal/repository/dao"
	"github.com/odolbodol/adboard/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	// Seed example ads on first startup. A failure here is logged and
	// swallowed: the server must come up even if seeding did not.
	svc := service.NewAdService(repository.NewAdRepository(dao.NewAdDAO(postgresDB)))
	if err = svc.SeedSampleAds(context.Background()); err != nil {
		zap.L().Warn("failed to seed sample ads", zap.Error(err))
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
