package vaccinations

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) error
}
