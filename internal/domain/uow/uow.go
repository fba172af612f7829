package uow

import (
	"context"

	"pet-adoption-backend/internal/domain/adoption"
	"pet-adoption-backend/internal/domain/pet"
	"pet-adoption-backend/internal/domain/questionnaire"
	"pet-adoption-backend/internal/domain/user"
)

// Repos are bound to one transaction.
type Repos struct {
	Users          user.Repository
	Admins         user.AdminRepository
	Pets           pet.Repository
	Questionnaires questionnaire.Repository
	Adoptions      adoption.Repository
}

type UnitOfWork interface {
	// fn's error rolls the transaction back
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
