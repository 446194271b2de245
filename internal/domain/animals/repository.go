package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	// ListByStatus ordena por date_posted desc.
	ListByStatus(ctx context.Context, status Status) ([]Animal, error)
	// ListByOwner ordena por date_posted desc.
	ListByOwner(ctx context.Context, userID string) ([]Animal, error)
}
