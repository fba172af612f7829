package db

import (
	"pet-adoption-backend/internal/domain/adoption"
	"pet-adoption-backend/internal/domain/pet"
	"pet-adoption-backend/internal/domain/questionnaire"
	"pet-adoption-backend/internal/domain/user"

	"gorm.io/gorm"
)

// Models in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&user.Admin{},
		&pet.Pet{},
		&questionnaire.Questionnaire{},
		&questionnaire.Recommendation{},
		&adoption.Request{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
