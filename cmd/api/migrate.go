package main

import (
	"context"
	"fmt"

	"pet-adoption-backend/internal/adapter/repository/mysql"
	"pet-adoption-backend/internal/domain/user"
	"pet-adoption-backend/internal/infrastructure/cache"
	"pet-adoption-backend/internal/infrastructure/db"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(func(gdb *gorm.DB) error {
				if err := db.Migrate(gdb); err != nil {
					return err
				}
				a.log.Info("schema migrated")
				return nil
			})
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the starter pet catalog, the ADMIN_USERNAME admin and the SEED_USER_USERNAME user, skipping existing rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := db.SeedData{Pets: db.DefaultPets}
			if a.cfg.AdminUsername != "" {
				data.Admin = &user.Admin{Username: a.cfg.AdminUsername}
				if err := data.Admin.SetPassword(a.cfg.AdminPassword, a.cfg.BcryptCost); err != nil {
					return err
				}
			}
			if a.cfg.SeedUserUsername != "" {
				data.User = &user.User{Username: a.cfg.SeedUserUsername}
				if err := data.User.SetPassword(a.cfg.SeedUserPassword, a.cfg.BcryptCost); err != nil {
					return err
				}
			}
			var res db.SeedResult
			err := a.withDB(func(gdb *gorm.DB) error {
				if err := db.Migrate(gdb); err != nil {
					return err
				}
				var err error
				res, err = db.Seed(cmd.Context(), gdb, data)
				if err == nil && res.PetsCreated > 0 {
					a.clearPetCache(cmd.Context(), gdb)
				}
				return err
			})
			if err != nil {
				return err
			}
			a.log.Info("seed complete",
				zap.Int("pets_created", res.PetsCreated),
				zap.Bool("admin_created", res.AdminCreated),
				zap.Bool("user_created", res.UserCreated))
			fmt.Fprintf(cmd.OutOrStdout(), "pets created: %d, admin created: %t, user created: %t\n", res.PetsCreated, res.AdminCreated, res.UserCreated)
			return nil
		},
	}
}

// clearPetCache drops cached catalog entries so a running server sees newly seeded pets.
// Failures are logged only: entries expire after PET_CACHE_TTL_SECONDS anyway.
func (a *app) clearPetCache(ctx context.Context, gdb *gorm.DB) {
	if a.cfg.RedisAddr == "" {
		return
	}
	rdb, err := cache.OpenRedis(ctx, a.cfg.RedisAddr, a.cfg.RedisDB)
	if err != nil {
		a.log.Warn("pet cache not cleared", zap.Error(err))
		return
	}
	defer rdb.Close()
	pets := cache.NewPetCatalog(mysql.NewPetRepository(gdb), rdb, a.cfg.PetCacheTTL(), a.log)
	if err := pets.Invalidate(ctx); err != nil {
		a.log.Warn("pet cache not cleared", zap.Error(err))
		return
	}
	a.log.Info("pet cache cleared")
}
