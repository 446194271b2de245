package rescues

import "context"

type Repository interface {
	Create(ctx context.Context, r Rescue) error
}
