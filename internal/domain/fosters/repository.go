package fosters

import "context"

type Repository interface {
	// Create devuelve ErrDuplicateEmail si ya existe una solicitud con ese email.
	Create(ctx context.Context, f Foster) error
}
