package db

import (
	"context"

	"pet-adoption-backend/internal/domain/pet"
	"pet-adoption-backend/internal/domain/user"

	"gorm.io/gorm"
)

// DefaultPets is the starter catalog.
var DefaultPets = []pet.Pet{
	{Name: "Max", Type: "dog", Size: "medium", EnergyLevel: "high", MaintenanceLevel: "medium", Budget: "high"},
	{Name: "Bella", Type: "cat", Size: "small", EnergyLevel: "low", MaintenanceLevel: "low", Budget: "medium"},
	{Name: "Charlie", Type: "dog", Size: "large", EnergyLevel: "medium", MaintenanceLevel: "high", Budget: "high"},
	{Name: "Lucy", Type: "dog", Size: "small", EnergyLevel: "medium", MaintenanceLevel: "medium", Budget: "low"},
	{Name: "Milo", Type: "cat", Size: "medium", EnergyLevel: "low", MaintenanceLevel: "low", Budget: "medium"},
}

// SeedData is what `seed` inserts. Admin and User are optional.
type SeedData struct {
	Pets  []pet.Pet
	Admin *user.Admin
	User  *user.User
}

type SeedResult struct {
	PetsCreated  int
	AdminCreated bool
	UserCreated  bool
}

// Seed inserts pets missing by name, then the admin and demo user when their usernames are free.
// Re-running is a no-op.
func Seed(ctx context.Context, db *gorm.DB, in SeedData) (SeedResult, error) {
	var out SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range in.Pets {
			p := p
			var n int64
			if err := tx.Model(&pet.Pet{}).Where("name = ?", p.Name).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			out.PetsCreated++
		}
		var err error
		if in.Admin != nil {
			if out.AdminCreated, err = createIfFree(tx, &user.Admin{}, in.Admin.Username, in.Admin); err != nil {
				return err
			}
		}
		if in.User != nil {
			if out.UserCreated, err = createIfFree(tx, &user.User{}, in.User.Username, in.User); err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}

// createIfFree inserts row unless model's table already holds username.
func createIfFree(tx *gorm.DB, model any, username string, row any) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := tx.Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}
