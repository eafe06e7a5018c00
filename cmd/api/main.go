package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"booknest/internal/core/auth"
	"booknest/internal/core/config"
	"booknest/internal/core/database"
	"booknest/internal/core/logger"
	"booknest/internal/core/server"
	"booknest/internal/domain"
	"booknest/internal/repo"
	"booknest/internal/seed"
	"booknest/internal/service"
	"booknest/internal/transport/http/handler"
	"booknest/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Book{},
			&domain.Loan{},
			&domain.ReadingListEntry{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.TTLHours) * time.Hour,
	}

	// explicit wiring: one store handle, passed down, never a singleton
	userRepo := repo.NewUserRepo(db)
	bookRepo := repo.NewBookRepo(db)
	loanRepo := repo.NewLoanRepo(db)
	readingRepo := repo.NewReadingListRepo(db)

	if err := seed.EnsureAdmin(userRepo, cfg.Seed.AdminUsername, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, log); err != nil {
		log.Fatal("admin seed failed", zap.Error(err))
	}

	userSvc := service.NewUserService(userRepo, jwter)
	bookSvc := service.NewBookService(bookRepo)
	loanSvc := service.NewLoanService(loanRepo)
	readingSvc := service.NewReadingListService(readingRepo)

	r := router.NewAPIEngine(log, jwter, router.Handlers{
		Auth:        handler.NewAuthHandler(userSvc),
		Users:       handler.NewUserHandler(userSvc),
		Books:       handler.NewBookHandler(bookSvc),
		Loans:       handler.NewLoanHandler(loanSvc),
		ReadingList: handler.NewReadingListHandler(readingSvc),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
