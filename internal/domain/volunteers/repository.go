package volunteers

import "context"

type Repository interface {
	// Create devuelve ErrDuplicateEmail si ya existe una solicitud con ese email.
	Create(ctx context.Context, v Volunteer) error
}
