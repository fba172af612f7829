// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"testing"

	"pet-adoption-backend/internal/config"
	"pet-adoption-backend/internal/domain/user"
	"pet-adoption-backend/internal/infrastructure/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Open returns an empty, migrated database that is closed with the test.
// The pool is pinned to one connection, so a goroutine that needs the db while another holds a tx waits.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenGorm(&config.Config{DBDriver: config.DriverSQLite, SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// OpenSeeded is Open plus the default pet catalog and an admin "root" / "rootpw".
func OpenSeeded(t testing.TB) *gorm.DB {
	t.Helper()
	gdb := Open(t)
	adm := &user.Admin{Username: "root"}
	if err := adm.SetPassword("rootpw", bcrypt.MinCost); err != nil {
		t.Fatalf("admin password: %v", err)
	}
	if _, err := db.Seed(context.Background(), gdb, db.SeedData{Pets: db.DefaultPets, Admin: adm}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return gdb
}

// CreateUser inserts a user with password "pw".
func CreateUser(t testing.TB, gdb *gorm.DB, username string) *user.User {
	t.Helper()
	u := &user.User{Username: username}
	if err := u.SetPassword("pw", bcrypt.MinCost); err != nil {
		t.Fatalf("user password: %v", err)
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}
