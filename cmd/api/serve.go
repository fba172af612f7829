package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadp "pet-adoption-backend/internal/adapter/http"
	"pet-adoption-backend/internal/adapter/repository/mysql"
	"pet-adoption-backend/internal/domain/pet"
	"pet-adoption-backend/internal/infrastructure/cache"
	"pet-adoption-backend/internal/infrastructure/db"
	"pet-adoption-backend/internal/usecase/adoption"
	"pet-adoption-backend/internal/usecase/catalog"
	"pet-adoption-backend/internal/usecase/identity"
	"pet-adoption-backend/internal/usecase/questionnaire"
	"pet-adoption-backend/internal/usecase/review"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.withDB(func(gdb *gorm.DB) error { return a.serve(ctx, gdb) })
		},
	}
}

// withDB opens the configured database, runs fn and closes the pool.
func (a *app) withDB(fn func(gdb *gorm.DB) error) error {
	gdb, err := db.OpenGorm(a.cfg)
	if err != nil {
		return err
	}
	a.log.Info("database connected", zap.String("driver", a.cfg.DBDriver))
	defer func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	return fn(gdb)
}

// deps wires repositories, usecases and the optional Redis features.
func (a *app) deps(gdb *gorm.DB, rdb *redis.Client) httpadp.Deps {
	repos := mysql.NewRepos(gdb)
	tx := mysql.NewGormUoW(gdb)

	var pets pet.Repository = repos.Pets
	if rdb != nil {
		pets = cache.NewPetCatalog(repos.Pets, rdb, a.cfg.PetCacheTTL(), a.log)
	}

	q := questionnaire.NewUsecase(repos.Questionnaires, tx)
	ad := adoption.NewUsecase(repos.Adoptions, tx)
	return httpadp.Deps{
		Identity:       identity.NewUsecase(repos.Users, repos.Admins, a.cfg.BcryptCost),
		Catalog:        catalog.NewUsecase(pets),
		Questionnaires: q,
		Adoptions:      ad,
		Reviews:        review.NewUsecase(q, ad, a.log.Named("review")),
		Redis:          rdb,
		IdempotencyTTL: a.cfg.IdempotencyTTL(),
		Log:            a.log,
	}
}

func (a *app) serve(ctx context.Context, gdb *gorm.DB) error {
	if a.cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}

	var rdb *redis.Client
	if a.cfg.RedisAddr != "" {
		var err error
		rdb, err = cache.OpenRedis(ctx, a.cfg.RedisAddr, a.cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		a.log.Info("redis connected", zap.String("addr", a.cfg.RedisAddr))
	} else {
		a.log.Info("REDIS_ADDR empty: idempotency and pet cache disabled")
	}

	e := httpadp.NewRouter(a.deps(gdb, rdb))

	addr := ":" + a.cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
