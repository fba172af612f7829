package pet

import "context"

type Repository interface {
	// List returns every pet ordered by id
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id uint64) (*Pet, error)
}
