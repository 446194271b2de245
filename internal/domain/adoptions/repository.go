package adoptions

import "context"

type Repository interface {
	Create(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)

	// ListPendingByAnimal ordena por fecha asc (la más vieja primero).
	ListPendingByAnimal(ctx context.Context, animalID string) ([]Adoption, error)
	// ListByUser ordena por fecha desc.
	ListByUser(ctx context.Context, userID string) ([]Adoption, error)

	// Accept marca la solicitud Accepted, el animal Adopted y el resto de
	// solicitudes Pending del animal como Unavailable, todo o nada.
	// Bajo el lock del animal revalida que siga Available (*AnimalStatusError)
	// y que no haya otra aceptada (ErrAlreadyAccepted).
	Accept(ctx context.Context, adoptionID, animalID string) error

	// Reject sólo pasa a Rejected una solicitud Pending (ErrNotPending si no).
	Reject(ctx context.Context, adoptionID string) error
}
