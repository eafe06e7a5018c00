package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"booknest/internal/core/config"
	"booknest/internal/core/database"
	"booknest/internal/core/logger"
	"booknest/internal/domain"
	"booknest/internal/repo"
	"booknest/internal/seed"
)

// Seeds the admin account and a demo catalog. Idempotent.
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Book{},
		&domain.Loan{},
		&domain.ReadingListEntry{},
	); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	if err := seed.EnsureAdmin(
		repo.NewUserRepo(db),
		cfg.Seed.AdminUsername, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword,
		log,
	); err != nil {
		log.Fatal("admin seed failed", zap.Error(err))
	}
	if err := seed.EnsureDemoBooks(repo.NewBookRepo(db), log); err != nil {
		log.Fatal("demo books seed failed", zap.Error(err))
	}
	log.Info("seed complete")
}
